// receipt/printer.go
package receipt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/sirupsen/logrus"
)

var ErrNoPrinter = errors.New("no print command configured")

// Printer hands a rendered receipt to the platform's print spooler. There
// is no retry; a failed print is reported once and the operator re-triggers
// it.
type Printer struct {
	command string
	log     *logrus.Logger
}

func NewPrinter(command string, log *logrus.Logger) *Printer {
	return &Printer{command: command, log: log}
}

// Print writes the document to a temp file and runs the spooler command on
// it.
func (p *Printer) Print(ctx context.Context, html string) error {
	if p.command == "" {
		return ErrNoPrinter
	}

	f, err := os.CreateTemp("", "receipt-*.html")
	if err != nil {
		return fmt.Errorf("spool receipt: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(html); err != nil {
		f.Close()
		return fmt.Errorf("spool receipt: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("spool receipt: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	out, err := exec.CommandContext(ctx, p.command, path).CombinedOutput()
	if err != nil {
		p.log.WithError(err).WithField("output", string(out)).Error("print command failed")
		return fmt.Errorf("print failed: %w", err)
	}
	p.log.WithField("command", p.command).Info("receipt sent to printer")
	return nil
}
