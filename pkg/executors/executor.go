package executors

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/yurifrl/overdraft/pkg/config"
	"github.com/yurifrl/overdraft/pkg/parser"
)

// Executor runs the interest pipeline for statements and either previews
// the result (Plan) or writes the export files (Apply).
type Executor struct {
	logger *log.Logger
	config *config.Config
	parser *parser.Parser
	out    io.Writer
}

func New(logger *log.Logger, config *config.Config) *Executor {
	return &Executor{
		logger: logger,
		config: config,
		parser: parser.New(logger),
		out:    os.Stdout,
	}
}

// SetOutput redirects Plan previews.
func (e *Executor) SetOutput(w io.Writer) {
	e.out = w
}

func (e *Executor) Parser() *parser.Parser {
	return e.parser
}
