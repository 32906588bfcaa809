package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod  = "method"
	AttrPath    = "path"
	AttrStatus  = "status"
	AttrSource  = "source"
	AttrSurface = "surface"
	AttrHidden  = "hidden_past"
)
