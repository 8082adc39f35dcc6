package nclu

import "strings"

// errorMarker is how net reports some failures while still exiting 0.
const errorMarker = "ERROR"

// Reply is the classified form of a Result: either ok with the command's
// output, or a failure with a reason.
type Reply struct {
	ok     bool
	text   string
	reason string
}

func Ok(text string) Reply {
	return Reply{ok: true, text: text}
}

func Failure(reason string) Reply {
	return Reply{reason: reason}
}

func (r Reply) OK() bool       { return r.ok }
func (r Reply) Text() string   { return r.text }
func (r Reply) Reason() string { return r.reason }

// Classify turns a raw Result into a Reply. Both the exit status and the
// ERROR marker in stdout are checked.
func Classify(res Result) Reply {
	switch {
	case res.Err != nil:
		return Failure(firstNonEmpty(res.Stdout, res.Stderr, res.Err.Error()))
	case res.ExitCode != 0:
		return Failure(firstNonEmpty(res.Stdout, res.Stderr))
	case strings.Contains(res.Stdout, errorMarker):
		return Failure(res.Stdout)
	}
	return Ok(res.Stdout)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
