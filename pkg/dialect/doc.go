// Package dialect defines SQL dialects as plain keyword data.
//
// A Dialect is nothing but the tokenizer configuration for one SQL
// variant: which words start clauses, which force line breaks, how strings
// are quoted, and so on. Dialects register themselves into a process-wide
// registry from init, so a dialect variant can be substituted without
// touching formatting engine logic.
//
// Built-in dialects: "hive" (the default) and "standard".
package dialect
