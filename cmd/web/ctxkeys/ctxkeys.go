package ctxkeys

type Key int

const (
	CurrentPath Key = iota // string: request path, for nav highlighting
	SiteTitle              // string: site title for <title> suffixes
)
