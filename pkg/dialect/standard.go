package dialect

import "github.com/pseudomuto/sqlfmt/pkg/tokenizer"

func init() {
	Register(Standard)
}

// Standard is an ANSI-flavored dialect. Unlike Hive it breaks FROM and
// WHERE onto their own clause lines and treats the JOIN family as
// newline-triggering words.
var Standard = &Dialect{
	Name: "standard",
	Tokenizer: tokenizer.Config{
		ReservedWords:         standardReservedWords,
		ReservedTopLevelWords: standardReservedTopLevelWords,
		ReservedTopLevelInlineWords: []string{
			"LIMIT",
		},
		ReservedNewlineWords:    standardReservedNewlineWords,
		UnionWords:              standardUnionWords,
		StringTypes:             []string{`""`, "N''", "''", "``", "[]"},
		OpenParens:              []string{"(", "CASE"},
		CloseParens:             []string{")", "END"},
		IndexedPlaceholderTypes: []string{"?"},
		NamedPlaceholderTypes:   []string{":"},
		LineCommentTypes:        []string{"#", "--"},
	},
}

var standardReservedTopLevelWords = []string{
	"ADD",
	"ALTER COLUMN",
	"ALTER TABLE",
	"DELETE FROM",
	"FETCH FIRST",
	"FROM",
	"GROUP BY",
	"GO",
	"HAVING",
	"INSERT INTO",
	"INSERT",
	"MODIFY",
	"ORDER BY",
	"SELECT",
	"SET CURRENT SCHEMA",
	"SET SCHEMA",
	"SET",
	"UPDATE",
	"VALUES",
	"WHERE",
}

var standardReservedNewlineWords = []string{
	"AND",
	"CROSS APPLY",
	"CROSS JOIN",
	"ELSE",
	"INNER JOIN",
	"JOIN",
	"LEFT JOIN",
	"LEFT OUTER JOIN",
	"OR",
	"OUTER APPLY",
	"OUTER JOIN",
	"RIGHT JOIN",
	"RIGHT OUTER JOIN",
	"WHEN",
	"XOR",
}

var standardUnionWords = []string{
	"EXCEPT",
	"INTERSECT",
	"MINUS",
	"UNION",
	"UNION ALL",
}

var standardReservedWords = []string{
	"ACCESSIBLE",
	"ALL",
	"AS",
	"ASC",
	"BETWEEN",
	"BIGINT",
	"BINARY",
	"BLOB",
	"BOTH",
	"BY",
	"CASCADE",
	"CAST",
	"CHAR",
	"CHARACTER",
	"COLLATE",
	"COLUMN",
	"COMMENT",
	"CONSTRAINT",
	"CONTINUE",
	"CONVERT",
	"CREATE",
	"CURRENT_DATE",
	"CURRENT_TIME",
	"CURRENT_TIMESTAMP",
	"CURRENT_USER",
	"DATABASE",
	"DECIMAL",
	"DEFAULT",
	"DELETE",
	"DESC",
	"DESCRIBE",
	"DISTINCT",
	"DOUBLE",
	"DROP",
	"ESCAPE",
	"EXISTS",
	"FALSE",
	"FLOAT",
	"FOR",
	"FOREIGN",
	"FULL",
	"GRANT",
	"IF",
	"IGNORE",
	"IN",
	"INDEX",
	"INT",
	"INTEGER",
	"INTERVAL",
	"INTO",
	"IS",
	"KEY",
	"LEADING",
	"LIKE",
	"MATCH",
	"NOT",
	"NULL",
	"ON",
	"ORDER",
	"PRIMARY",
	"REFERENCES",
	"RENAME",
	"REPLACE",
	"RIGHT",
	"ROW",
	"ROWS",
	"SCHEMA",
	"SHOW",
	"SMALLINT",
	"TABLE",
	"THEN",
	"TO",
	"TRAILING",
	"TRUE",
	"TRUNCATE",
	"UNIQUE",
	"UNSIGNED",
	"UPDATE",
	"USE",
	"USING",
	"VARCHAR",
	"VIEW",
	"WITH",
}
