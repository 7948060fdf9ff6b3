package config

// StandaloneConfigName is the filename for a standalone configuration
// file at a project root.
const StandaloneConfigName = ".nblint.toml"

const templateBody = `# Directory notebooks are discovered under when no paths are given.
root = "."

# Rules to skip, by ID or name.
# disable = ["NB003", "has-title-cell"]

# Glob patterns for files to skip.
# ignore = ["**/scratch/**"]

# Suppress per-notebook success output.
# quiet = true
`

// Template returns starter configuration content. When pyproject is
// true the settings are nested under a [tool.nblint] table header,
// ready to append to an existing pyproject.toml.
func Template(pyproject bool) string {
	if pyproject {
		return "[tool.nblint]\n" + templateBody
	}
	return templateBody
}
