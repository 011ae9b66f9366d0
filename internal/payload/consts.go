package payload

const (
	unitKeyRegexp = "^sc([0-9]+)_(c|d|h|cpu|memory)$"

	// input sources.
	SourceFile     = "file"
	SourceArgument = "argument"
)
