package version

const Value = "1.0"

// UserAgent is sent on every baseline and probe request.
func UserAgent() string {
	return "ParameterX/" + Value
}
