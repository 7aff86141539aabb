package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"

	"github.com/sairarat/2-3-Binary-Tree/twothree"
)

type Cli struct {
	scanner    *bufio.Scanner
	out        io.Writer
	tree       *twothree.Tree
	visualizer *twothree.Visualizer
	warn       *color.Color
}

func NewCli(s *bufio.Scanner, out io.Writer, t *twothree.Tree, colored bool) *Cli {
	warn := color.New(color.FgYellow)
	if colored {
		warn.EnableColor()
	} else {
		warn.DisableColor()
	}
	return &Cli{
		scanner:    s,
		out:        out,
		tree:       t,
		visualizer: twothree.NewVisualizer(t, colored),
		warn:       warn,
	}
}

// Start runs the command loop until "exit" or the end of input.
func (c *Cli) Start() {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		if !c.processInput(c.scanner.Text()) {
			fmt.Fprintln(c.out, "Exiting program...")
			return
		}
		c.printPrompt()
	}
}

func (c *Cli) printHelp() {
	fmt.Fprintln(c.out, `
2-3 Tree CLI

Available Commands:
  INSERT <value>  Insert a value into the tree
  DELETE <value>  Delete a value from the tree
  SEARCH <value>  Search for a value in the tree
  PRINT           Print the current tree
  KEYS            List all values in ascending order
  STATS           Show the number of values and the tree height
  VERIFY          Check the tree's structural invariants
  CLEAR           Remove every value
  HELP            Show this message
  EXIT            Terminate this session`)
}

func (c *Cli) printPrompt() {
	fmt.Fprint(c.out, "> ")
}

func (c *Cli) printTree() {
	fmt.Fprintln(c.out, c.visualizer.Visualize())
}

func (c *Cli) warnf(format string, args ...any) {
	c.warn.Fprintf(c.out, format+"\n", args...)
}

// processInput handles one line and returns false when the session should end.
func (c *Cli) processInput(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return true
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		c.warnf("Unknown command \"%s\"", command)
	case "insert":
		c.processInsertCommand(fields[1:])
	case "delete":
		c.processDeleteCommand(fields[1:])
	case "search":
		c.processSearchCommand(fields[1:])
	case "print":
		c.printTree()
	case "keys":
		fmt.Fprintln(c.out, c.tree.Keys())
	case "stats":
		fmt.Fprintf(c.out, "keys: %d, height: %d\n", c.tree.Len(), c.tree.Height())
	case "verify":
		c.processVerifyCommand()
	case "clear":
		c.tree.Clear()
		fmt.Fprintln(c.out, "Tree cleared.")
	case "help":
		c.printHelp()
	case "exit":
		return false
	}
	return true
}

// parseValue expects exactly one integer argument.
func (c *Cli) parseValue(args []string, usage string) (int, bool) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage:", usage)
		return 0, false
	}
	v, err := strconv.Atoi(args[0])
	if err != nil {
		c.warnf("Invalid value. Please enter a valid integer.")
		return 0, false
	}
	return v, true
}

func (c *Cli) processInsertCommand(args []string) {
	v, ok := c.parseValue(args, "INSERT <value>")
	if !ok {
		return
	}
	if err := c.tree.Insert(v); err != nil {
		if errors.Is(err, twothree.ErrDuplicateKey) {
			c.warnf("Value %d is already in the tree.", v)
			return
		}
		c.warnf("Insert failed: %v", err)
		return
	}
	fmt.Fprintf(c.out, "Inserted %d\n", v)
	c.printTree()
}

func (c *Cli) processDeleteCommand(args []string) {
	v, ok := c.parseValue(args, "DELETE <value>")
	if !ok {
		return
	}
	if !c.tree.Delete(v) {
		c.warnf("Key not found.")
		return
	}
	fmt.Fprintf(c.out, "Deleted %d\n", v)
	c.printTree()
}

func (c *Cli) processSearchCommand(args []string) {
	v, ok := c.parseValue(args, "SEARCH <value>")
	if !ok {
		return
	}
	fmt.Fprintf(c.out, "Value %d found: %t\n", v, c.tree.Search(v))
}

func (c *Cli) processVerifyCommand() {
	if err := c.tree.Verify(); err != nil {
		c.warnf("Tree is invalid: %v", err)
		return
	}
	fmt.Fprintln(c.out, "Tree is valid.")
}
