// Package i18n loads per-language catalogs of unit abbreviations and unit
// names and serves lookups from them.
//
// A catalog is a nested map keyed by language code. Below the language, keys
// are namespaces (one per quantity kind) holding either a single string or a
// list of strings:
//
//	ru:
//	  electric_resistance:
//	    kiloohm: [кОм]
//	    names:
//	      kiloohm: килоом
//
// Storage is delegated to a TranslationAdapter. MapAdapter serves in-memory
// data, while FSAdapter reads every supported file of a directory in any
// fs.FS, which covers both embed.FS and os.DirFS. Content is decoded by a
// Parser (YAML or JSON).
//
// # Usage
//
//	adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "locales")
//	translator, err := i18n.NewTranslator(ctx, adapter, i18n.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	abbrs := translator.Strings("ru", "electric_resistance.kiloohm") // ["кОм"]
//
// Lookups use dot-separated keys and are safe for concurrent use.
//
// # Error Handling
//
// Loading failures wrap package sentinels such as ErrFailedToParseYAML with
// errors.Join, so callers can use errors.Is. Lookups never fail: they fall back
// to the key or an explicit default.
package i18n
