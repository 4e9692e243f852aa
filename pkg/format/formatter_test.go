package format_test

import (
	"strings"
	"testing"

	. "github.com/pseudomuto/sqlfmt/pkg/format"
	"github.com/stretchr/testify/require"
)

func formatterTests() []struct {
	name     string
	sql      string
	expected []string
} {
	return []struct {
		name     string
		sql      string
		expected []string
	}{
		{
			name: "select with multiple columns",
			sql:  "SELECT a, b FROM t WHERE x = 1",
			expected: []string{
				"SELECT",
				"  a,",
				"  b",
				"FROM t",
				"WHERE x = 1",
			},
		},
		{
			name: "keyword case is preserved",
			sql:  "select id from users",
			expected: []string{
				"select",
				"  id",
				"from users",
			},
		},
		{
			name: "collapsed keyword spacing",
			sql:  "SELECT x GROUP    BY x",
			expected: []string{
				"SELECT",
				"  x",
				"GROUP BY",
				"  x",
			},
		},
		{
			name: "function call stays inline",
			sql:  "SELECT COUNT(*) FROM t",
			expected: []string{
				"SELECT",
				"  COUNT(*)",
				"FROM t",
			},
		},
		{
			name: "subquery gets the block treatment",
			sql:  "SELECT * FROM (SELECT a FROM t) x",
			expected: []string{
				"SELECT",
				"  *",
				"FROM",
				"  (",
				"    SELECT",
				"      a",
				"    FROM t",
				"  ) x",
			},
		},
		{
			name: "insert with values",
			sql:  "INSERT INTO t VALUES (1, 2)",
			expected: []string{
				"INSERT INTO",
				"  t",
				"VALUES",
				"  (1, 2)",
			},
		},
		{
			name: "limit keeps its arguments on one line",
			sql:  "SELECT a FROM t LIMIT 1, 2",
			expected: []string{
				"SELECT",
				"  a",
				"FROM t",
				"LIMIT 1, 2",
			},
		},
		{
			name: "and breaks the line",
			sql:  "SELECT a FROM t WHERE x = 1 AND y = 2",
			expected: []string{
				"SELECT",
				"  a",
				"FROM t",
				"WHERE x = 1",
				"  AND y = 2",
			},
		},
		{
			name: "between keeps its and inline",
			sql:  "SELECT a FROM t WHERE x BETWEEN 1 AND 5 AND y = 2",
			expected: []string{
				"SELECT",
				"  a",
				"FROM t",
				"WHERE x between 1 AND 5",
				"  AND y = 2",
			},
		},
		{
			name: "case expression",
			sql:  "SELECT a, CASE WHEN x THEN 1 ELSE 2 END FROM t",
			expected: []string{
				"SELECT",
				"  a,",
				"  CASE",
				"    WHEN x then 1",
				"    ELSE 2",
				"  END",
				"FROM t",
			},
		},
		{
			name: "union all separates branches with a blank line",
			sql:  "SELECT a FROM t UNION ALL SELECT b FROM u",
			expected: []string{
				"SELECT",
				"  a",
				"FROM t",
				"",
				"UNION ALL",
				"SELECT",
				"  b",
				"FROM u",
			},
		},
		{
			name: "multiple statements",
			sql:  "SELECT a FROM t; SELECT b FROM u;",
			expected: []string{
				"SELECT",
				"  a",
				"FROM t;",
				"SELECT",
				"  b",
				"FROM u;",
			},
		},
		{
			name: "trailing line comment stays on its line",
			sql:  "SELECT a -- comment\nFROM t",
			expected: []string{
				"SELECT",
				"  a -- comment",
				"FROM t",
			},
		},
		{
			name: "comment before a comma trails the item",
			sql:  "SELECT a -- c\n, b FROM t",
			expected: []string{
				"SELECT",
				"  a, -- c",
				"  b",
				"FROM t",
			},
		},
		{
			name: "comment marker gains a space",
			sql:  "SELECT a --no space\nFROM t",
			expected: []string{
				"SELECT",
				"  a -- no space",
				"FROM t",
			},
		},
		{
			name: "block comment",
			sql:  "SELECT a /* note */ FROM t",
			expected: []string{
				"SELECT",
				"  a",
				"  /* note */",
				"FROM t",
			},
		},
		{
			name: "set statement preserves raw values",
			sql:  "SET hive.exec.parallel = true;",
			expected: []string{
				"SET hive.exec.parallel=true;",
			},
		},
		{
			name: "add jar path survives intact",
			sql:  "ADD JAR /tmp/x.jar;",
			expected: []string{
				"ADD JAR /tmp/x.jar;",
			},
		},
		{
			name: "join with on",
			sql:  "SELECT u.id FROM users u LEFT JOIN orders o ON u.id = o.user_id",
			expected: []string{
				"SELECT",
				"  u.id",
				"FROM users u",
				"LEFT JOIN orders o",
				"ON u.id = o.user_id",
			},
		},
		{
			name: "unbalanced close paren still formats",
			sql:  "SELECT a)",
			expected: []string{
				"SELECT",
				"  a",
				")",
			},
		},
	}
}

func TestFormatter(t *testing.T) {
	for _, tt := range formatterTests() {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.sql, nil)
			require.Equal(t, strings.Join(tt.expected, "\n"), result)
		})
	}
}

func TestFormatter_idempotent(t *testing.T) {
	for _, tt := range formatterTests() {
		t.Run(tt.name, func(t *testing.T) {
			once := Format(tt.sql, nil)
			require.Equal(t, once, Format(once, nil))
		})
	}
}

func TestFormatter_inputWhitespaceIsIrrelevant(t *testing.T) {
	compact := Format("SELECT a, b FROM t WHERE x = 1", nil)
	sprawling := Format("SELECT   a,\n\n\tb\n FROM\tt    WHERE x   =\n1", nil)
	require.Equal(t, compact, sprawling)
}

func TestFormatter_emptyAndBlankInput(t *testing.T) {
	require.Equal(t, "", Format("", nil))
	require.Equal(t, "", Format("   \n\t  ", nil))
}

func TestFormatter_preservesParens(t *testing.T) {
	for _, tt := range formatterTests() {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.sql, nil)
			require.Equal(t, strings.Count(tt.sql, "("), strings.Count(result, "("))
			require.Equal(t, strings.Count(tt.sql, ")"), strings.Count(result, ")"))
		})
	}
}

func TestFormatter_customIndent(t *testing.T) {
	result := Format("SELECT a, b FROM t", &Options{Indent: "    "})

	require.Equal(t, strings.Join([]string{
		"SELECT",
		"    a,",
		"    b",
		"FROM t",
	}, "\n"), result)
}

func TestFormatter_namedParams(t *testing.T) {
	result := Format("SELECT * FROM t WHERE name = :name", &Options{
		NamedParams: map[string]string{"name": "'Ada'"},
	})

	require.Equal(t, strings.Join([]string{
		"SELECT",
		"  *",
		"FROM t",
		"WHERE name = 'Ada'",
	}, "\n"), result)
}

func TestFormatter_positionalParams(t *testing.T) {
	result := Format("SELECT * FROM t WHERE id = ? AND age > ?", &Options{
		PositionalParams: []string{"42", "18"},
	})

	require.Equal(t, strings.Join([]string{
		"SELECT",
		"  *",
		"FROM t",
		"WHERE id = 42",
		"  AND age > 18",
	}, "\n"), result)
}

func TestFormatter_paramsPassThroughByDefault(t *testing.T) {
	result := Format("SELECT * FROM t WHERE id = ? AND name = :name", nil)

	require.Equal(t, strings.Join([]string{
		"SELECT",
		"  *",
		"FROM t",
		"WHERE id = ?",
		"  AND name = :name",
	}, "\n"), result)
}

func TestFormatter_standardDialect(t *testing.T) {
	result := Format("SELECT a FROM t WHERE x = 1", &Options{Dialect: "standard"})

	require.Equal(t, strings.Join([]string{
		"SELECT",
		"  a",
		"FROM",
		"  t",
		"WHERE",
		"  x = 1",
	}, "\n"), result)
}

func TestFormatter_unknownDialectFallsBack(t *testing.T) {
	unknown := Format("SELECT a FROM t", &Options{Dialect: "nope"})
	require.Equal(t, Format("SELECT a FROM t", nil), unknown)
}

func TestNew(t *testing.T) {
	require.NotNil(t, New(nil))
	require.NotNil(t, NewDefault())

	// options are copied, not aliased
	opts := &Options{Indent: "\t"}
	f := New(opts)
	opts.Indent = "  "
	require.Equal(t, "SELECT\n\ta\nFROM t", f.Format("SELECT a FROM t"))
}
