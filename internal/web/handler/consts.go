package handler

const (
	// APIPath is the prefix of every JSON route.
	APIPath = "/api"

	// RouterRootPath is the root path of a route group.
	RouterRootPath = "/"

	// ErrNilACDFatalLogMsg is used if app, cfg or a dependency is nil.
	ErrNilACDFatalLogMsg = "app, cfg or a handler dependency is nil"
)
