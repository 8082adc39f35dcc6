package nclu

import (
	"log/slog"
	"time"

	"github.com/joelmoss/nclu/internal/logging"
)

// Client issues commands to net and interprets the replies. It holds no
// transaction state; the pending buffer lives in net itself.
type Client struct {
	Executor CommandExecutor
	Logger   *slog.Logger
}

// New returns a Client that runs the net binary at path.
func New(path string, logger *slog.Logger) *Client {
	return &Client{
		Executor: &RealExecutor{Binary: path},
		Logger:   logger,
	}
}

func (c *Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return logging.NewNop()
}

// RunGuarded runs a single net command. It fails when net exits non-zero or
// prints ERROR; the error message is errmsg when given, otherwise net's
// own output.
func (c *Client) RunGuarded(command, errmsg string) (string, error) {
	start := time.Now()
	res := c.Executor.Run(command)
	c.logger().Debug("net", "command", command, "exit", res.ExitCode, "duration", time.Since(start))

	reply := Classify(res)
	if !reply.OK() {
		msg := reply.Reason()
		if errmsg != "" {
			msg = errmsg
		}
		c.logger().Debug("net command failed", "command", command, "reason", reply.Reason())
		return "", &CommandError{Command: command, Message: msg}
	}
	return reply.Text(), nil
}
