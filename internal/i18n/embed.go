package i18n

import "embed"

// LocaleFS holds the built-in translation catalogs.
//
//go:embed locales/*.yaml
var LocaleFS embed.FS
