package nclu

import (
	"fmt"
	"strings"
)

const commitIgnored = "commit ignored"

// Outcome is what a transaction reports back to the caller.
type Outcome struct {
	Changed bool   `json:"changed"`
	Msg     string `json:"msg"`
}

// CommitBehavior decides whether to commit afterwards and whether to abort
// the pending buffer first. Atomic implies both.
func CommitBehavior(commit, atomic, abort bool) (shouldCommit, shouldAbortFirst bool) {
	return commit || atomic, atomic || abort
}

// RunTransaction runs every command in req against net and reports whether
// the pending buffer changed. The first failing command stops the
// transaction; whatever it left in the buffer stays uncommitted.
func (c *Client) RunTransaction(req Request) (Outcome, error) {
	commands, err := req.commands()
	if err != nil {
		return Outcome{}, err
	}
	doCommit, doAbort := CommitBehavior(req.Commit, req.Atomic, req.Abort)

	if doAbort {
		if err := c.Abort(); err != nil {
			return Outcome{}, err
		}
	}

	before, err := c.CheckPending()
	if err != nil {
		return Outcome{}, err
	}

	outputs := make([]string, 0, len(commands))
	for _, line := range commands {
		out, err := c.RunGuarded(line, "Failed on line "+line)
		if err != nil {
			return Outcome{}, err
		}
		outputs = append(outputs, out)
	}

	after, err := c.CheckPending()
	if err != nil {
		return Outcome{}, err
	}

	changed := before != after
	c.logger().Debug("pending compared", "changed", changed, "commands", len(commands))

	if doCommit {
		changed, err = c.commit(req.Description, changed)
		if err != nil {
			return Outcome{}, err
		}
	}

	return Outcome{Changed: changed, Msg: strings.Join(outputs, "\n")}, nil
}

// Commit commits whatever is already pending. It reports a change only
// when the buffer was dirty and net recorded the commit.
func (c *Client) Commit(description string) (Outcome, error) {
	pending, err := c.CheckPending()
	if err != nil {
		return Outcome{}, err
	}
	changed, err := c.commit(description, pending != "")
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Changed: changed}, nil
}

// commit commits the pending buffer and corrects changed when net did not
// actually record a commit.
func (c *Client) commit(description string, changed bool) (bool, error) {
	out, err := c.RunGuarded(fmt.Sprintf("commit description '%s'", description), "")
	if err != nil {
		return false, err
	}

	if strings.Contains(out, commitIgnored) {
		c.logger().Debug("commit ignored, aborting")
		if err := c.Abort(); err != nil {
			return false, err
		}
		return false, nil
	}

	last, err := c.RunGuarded(cmdShowCommit, "")
	if err != nil {
		return false, err
	}
	if strings.TrimSpace(last) == "" {
		c.logger().Debug("no last commit recorded")
		return false, nil
	}
	return changed, nil
}
