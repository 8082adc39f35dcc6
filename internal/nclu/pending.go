package nclu

import "strings"

const (
	cmdPending    = "pending"
	cmdAbort      = "abort"
	cmdShowCommit = "show commit last"

	pendingDelimiter = "net add/del commands since the last 'net commit'"
	pendingColor     = "\x1b[94m"
)

// CheckPending returns the normalized contents of net's pending buffer.
func (c *Client) CheckPending() (string, error) {
	out, err := c.RunGuarded(cmdPending, "check pending failed")
	if err != nil {
		return "", err
	}
	return normalizePending(out), nil
}

// normalizePending drops the explanatory trailer net prints after the diff
// and the color codes around it.
func normalizePending(out string) string {
	if before, _, found := strings.Cut(out, pendingDelimiter); found {
		out = before
	}
	out = strings.ReplaceAll(out, pendingColor, "")
	return strings.TrimSpace(out)
}

// Abort discards net's pending buffer.
func (c *Client) Abort() error {
	_, err := c.RunGuarded(cmdAbort, "")
	return err
}
