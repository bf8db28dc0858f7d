package assets

import "embed"

// AssetsFS holds the generated stylesheet and scripts served under /assets/.
// Run `do gen` after changing templates to rebuild css/output.css.
//
//go:embed css/output.css js
var AssetsFS embed.FS
