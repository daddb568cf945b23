package checkins

type Source string

const (
	SourceManual Source = "manual"
	SourceTag    Source = "tag"
)
