package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "lessco.yaml"

	// TemplatesDirName is the directory holding templates below a client root.
	TemplatesDirName = "templates"

	// DefaultLessFile is the template-relative path of the Less source.
	DefaultLessFile = "less/template.less"

	// DefaultCSSFile is the template-relative path of the compiled stylesheet.
	DefaultCSSFile = "css/template.css"

	// CustomLessFile is the free-form Less override appended by the save hook.
	CustomLessFile = "less/custom.less"

	// CustomCSSFile is the free-form CSS override appended by the save hook.
	CustomCSSFile = "css/custom.css"

	// LessDirName is the template directory used as import path by the save hook.
	LessDirName = "less"

	// DefaultTmpPath is the default cache directory, relative to the site root.
	DefaultTmpPath = "tmp"

	// DefaultAdminRoot is the default administrator root, relative to the site root.
	DefaultAdminRoot = "administrator"

	// DefaultAdminBase is the URL path prefix of the administrator client.
	DefaultAdminBase = "/administrator"

	// DefaultSiteURL is the absolute URL used when none is configured.
	DefaultSiteURL = "http://localhost"

	// DefaultMediaDir is where client-side compiler scripts are installed, relative to the site root.
	DefaultMediaDir = "media/plg_less/js"

	// ClientAssetPattern matches client-side compiler scripts.
	ClientAssetPattern = "less-*.js"

	// DefaultEngineBinary is the Less compiler executable.
	DefaultEngineBinary = "lessc"

	// CacheFileExt is the extension of cache record files.
	CacheFileExt = ".cache"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// CacheKey returns the cache record name for a client, template and input file.
// Records for different clients or templates never collide.
func CacheKey(kind ClientKind, template, inputPath string) string {
	return string(kind) + "_" + template + "_" + filepath.Base(inputPath) + CacheFileExt
}

// TemplateDir returns the directory of a template below a client root.
func TemplateDir(clientRoot, template string) string {
	return filepath.Join(clientRoot, TemplatesDirName, template)
}

// TemplateURI returns the root-relative URI prefix of a template, with a trailing slash.
func TemplateURI(template string) string {
	return TemplatesDirName + "/" + template + "/"
}
