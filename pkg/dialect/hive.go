package dialect

import "github.com/pseudomuto/sqlfmt/pkg/tokenizer"

func init() {
	Register(Hive)
}

// Hive is the HiveQL dialect. It is the default dialect: FROM, WHERE, the
// JOIN family, ON, and LIMIT keep their content on the same line, and the
// shell-like ADD JAR / SET statements preserve raw value spacing.
var Hive = &Dialect{
	Name: "hive",
	Tokenizer: tokenizer.Config{
		ReservedWords:               hiveReservedWords,
		ReservedTopLevelWords:       hiveReservedTopLevelWords,
		ReservedTopLevelInlineWords: hiveReservedTopLevelInlineWords,
		ReservedNewlineWords:        hiveReservedNewlineWords,
		UnionWords:                  hiveUnionWords,
		StringTypes:                 []string{`""`, "''", "``"},
		OpenParens:                  []string{"(", "CASE"},
		CloseParens:                 []string{")", "END"},
		IndexedPlaceholderTypes:     []string{"?"},
		NamedPlaceholderTypes:       []string{":"},
		LineCommentTypes:            []string{"--"},
	},
}

var hiveReservedTopLevelWords = []string{
	"CLUSTER BY",
	"DELETE FROM",
	"DISTRIBUTE BY",
	"GROUP BY",
	"HAVING",
	"INSERT INTO",
	"INSERT OVERWRITE DIRECTORY",
	"INSERT OVERWRITE TABLE",
	"LATERAL VIEW",
	"ORDER BY",
	"PARTITION BY",
	"SELECT",
	"SORT BY",
	"UPDATE",
	"VALUES",
	"WINDOW",
	"WITH",
}

var hiveReservedTopLevelInlineWords = []string{
	"CROSS JOIN",
	"FROM",
	"FULL JOIN",
	"FULL OUTER JOIN",
	"INNER JOIN",
	"JOIN",
	"LEFT JOIN",
	"LEFT OUTER JOIN",
	"LEFT SEMI JOIN",
	"LIMIT",
	"ON",
	"RIGHT JOIN",
	"RIGHT OUTER JOIN",
	"USING",
	"WHERE",
}

var hiveReservedNewlineWords = []string{
	"ADD ARCHIVE",
	"ADD FILE",
	"ADD JAR",
	"ALTER TABLE",
	"AND",
	"ELSE",
	"OR",
	"SET",
	"WHEN",
	"XOR",
}

var hiveUnionWords = []string{
	"EXCEPT",
	"INTERSECT",
	"MINUS",
	"UNION",
	"UNION ALL",
	"UNION DISTINCT",
}

var hiveReservedWords = []string{
	"ALL",
	"ALTER",
	"ARRAY",
	"AS",
	"ASC",
	"BETWEEN",
	"BIGINT",
	"BINARY",
	"BOOLEAN",
	"BOTH",
	"BUCKET",
	"BUCKETS",
	"BY",
	"CACHE",
	"CASCADE",
	"CAST",
	"CHAR",
	"COLLECTION",
	"COLUMN",
	"COLUMNS",
	"COMMENT",
	"CONF",
	"CREATE",
	"CUBE",
	"CURRENT",
	"CURRENT_DATE",
	"CURRENT_TIMESTAMP",
	"DATABASE",
	"DATABASES",
	"DATE",
	"DECIMAL",
	"DEFAULT",
	"DELETE",
	"DESC",
	"DESCRIBE",
	"DISTINCT",
	"DOUBLE",
	"DROP",
	"EXCHANGE",
	"EXISTS",
	"EXTENDED",
	"EXTERNAL",
	"FALSE",
	"FETCH",
	"FIELDS",
	"FIRST",
	"FLOAT",
	"FOLLOWING",
	"FOR",
	"FORMAT",
	"FORMATTED",
	"FUNCTION",
	"GRANT",
	"GROUPING",
	"IF",
	"IMPORT",
	"IN",
	"INPATH",
	"INT",
	"INTERVAL",
	"INTO",
	"IS",
	"ITEMS",
	"JAR",
	"KEYS",
	"LAST",
	"LATERAL",
	"LESS",
	"LIKE",
	"LINES",
	"LOAD",
	"LOCAL",
	"LOCATION",
	"MACRO",
	"MAP",
	"MORE",
	"NONE",
	"NOT",
	"NULL",
	"NULLS",
	"OF",
	"OUT",
	"OUTER",
	"OVER",
	"OVERWRITE",
	"PARTITION",
	"PARTITIONED",
	"PERCENT",
	"PRECEDING",
	"PRESERVE",
	"PRIMARY",
	"PURGE",
	"RANGE",
	"REDUCE",
	"REGEXP",
	"RENAME",
	"RLIKE",
	"ROLLUP",
	"ROW",
	"ROWS",
	"SCHEMA",
	"SHOW",
	"SMALLINT",
	"STORED",
	"STRING",
	"STRUCT",
	"TABLE",
	"TABLES",
	"TABLESAMPLE",
	"TBLPROPERTIES",
	"TEMPORARY",
	"TERMINATED",
	"THEN",
	"TIMESTAMP",
	"TINYINT",
	"TO",
	"TRANSFORM",
	"TRUE",
	"TRUNCATE",
	"UNBOUNDED",
	"USE",
	"VARCHAR",
	"VIEW",
}
