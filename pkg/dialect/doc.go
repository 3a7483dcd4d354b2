// Package dialect holds the vocabularies that drive tokenization and layout.
//
// A dialect is a Config: reserved word tiers, quote styles, paren words,
// placeholder prefixes, comment prefixes and a Jinja Template vocabulary.
// Dialects are registered by name and resolved with Lookup:
//
//	cfg, err := dialect.Lookup("default")
//	if err != nil {
//		return err
//	}
//
// Custom dialects usually start from the default one:
//
//	snow := dialect.Default.Extend("snowflake", dialect.Config{
//		ReservedTopLevelWords: []string{"QUALIFY"},
//	})
//	if err := dialect.Register(snow); err != nil {
//		return err
//	}
package dialect
