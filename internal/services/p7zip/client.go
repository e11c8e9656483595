package p7zip

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"archivecheck/internal/services"
)

// Tester defines the behaviour required by the verification dispatcher.
type Tester interface {
	Test(ctx context.Context, path string) error
}

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string, onStdout func(string)) error
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Client wraps the 7-Zip CLI "t" (test) subcommand.
type Client struct {
	binary      string
	testTimeout time.Duration
	exec        Executor
}

// New constructs a 7-Zip client around a resolved binary path. A zero
// timeout disables the per-invocation deadline.
func New(binary string, testTimeout time.Duration, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("7-zip binary required")
	}
	client := &Client{
		binary:      binary,
		testTimeout: testTimeout,
		exec:        commandExecutor{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Binary returns the command the client executes.
func (c *Client) Binary() string {
	return c.binary
}

// Test runs the tool's integrity test against path. A nil return means the
// tool reported the archive intact. A non-zero exit is the tool's verdict
// that the archive is damaged and comes back tagged services.ErrCorrupt with
// an output excerpt; timeouts and invocation failures are tagged so callers
// can classify them as unverifiable instead.
func (c *Client) Test(ctx context.Context, path string) error {
	if strings.TrimSpace(path) == "" {
		return services.Wrap(services.ErrConfiguration, "p7zip", "test", "archive path required", nil)
	}

	testCtx := ctx
	if c.testTimeout > 0 {
		var cancel context.CancelFunc
		testCtx, cancel = context.WithTimeout(ctx, c.testTimeout)
		defer cancel()
	}

	excerpt := newExcerpt(6)
	err := c.exec.Run(testCtx, c.binary, []string{"t", path}, excerpt.observe)
	if err == nil {
		return nil
	}

	// Parent cancellation propagates untouched so the run can wind down.
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if errors.Is(testCtx.Err(), context.DeadlineExceeded) {
		return services.Wrap(services.ErrTimeout, "p7zip", "test",
			fmt.Sprintf("no verdict within %s", c.testTimeout), err)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return services.Wrap(services.ErrCorrupt, "p7zip", "test", excerpt.String(), err)
	}
	if errors.Is(err, exec.ErrNotFound) {
		return services.Wrap(services.ErrNotFound, "p7zip", "test",
			fmt.Sprintf("binary %q not found", c.binary), err)
	}
	return services.Wrap(services.ErrExternalTool, "p7zip", "test", excerpt.String(), err)
}

var _ Tester = (*Client)(nil)

// excerpt keeps the most recent non-blank output lines so failures can carry
// the tool's own diagnostic. observe is called from both pipe readers, hence
// the mutex.
type excerpt struct {
	mu    sync.Mutex
	lines []string
	limit int
}

func newExcerpt(limit int) *excerpt {
	return &excerpt{limit: limit}
}

func (e *excerpt) observe(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lines = append(e.lines, line)
	if len(e.lines) > e.limit {
		e.lines = e.lines[len(e.lines)-e.limit:]
	}
}

func (e *excerpt) String() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.lines) == 0 {
		return "tool reported failure"
	}
	return strings.Join(e.lines, " | ")
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string, onStdout func(string)) error {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start command: %w", err)
	}

	var wg sync.WaitGroup
	var scanErr error
	var once sync.Once

	scan := func(r io.Reader, forward func(string)) {
		defer wg.Done()
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			forward(scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			once.Do(func() {
				scanErr = err
			})
		}
	}

	forward := func(line string) {
		if onStdout != nil {
			onStdout(line)
			return
		}
		fmt.Fprintln(os.Stderr, line)
	}

	wg.Add(2)
	go scan(stdout, forward)
	go scan(stderr, forward)

	wg.Wait()
	if scanErr != nil {
		_ = cmd.Process.Kill()
		return fmt.Errorf("scan output: %w", scanErr)
	}

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("wait command: %w", err)
	}
	return nil
}
