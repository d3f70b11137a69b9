// Package menu implements the interactive text menu that drives the inventory.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rogerio-castellano/faststock/internal/i18n"
	"github.com/rogerio-castellano/faststock/internal/repo"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/message"
)

const clearSequence = "\033[H\033[2J"

type state int

const (
	stateMainMenu state = iota
	stateAddProduct
	stateRemoveProduct
	stateListProducts
	stateFindProduct
	stateExit
)

var choices = map[string]state{
	"1": stateAddProduct,
	"2": stateRemoveProduct,
	"3": stateListProducts,
	"4": stateFindProduct,
	"5": stateExit,
}

type Options struct {
	// ClearScreen clears the terminal before every screen.
	ClearScreen bool
	// Pause waits for Enter after every action.
	Pause bool
}

// Menu reads choices from its input and dispatches them to the product
// repository until the user exits or the input ends.
type Menu struct {
	products repo.ProductRepository
	lines    chan inputLine
	out      io.Writer
	p        *message.Printer
	logger   *logrus.Logger
	opts     Options
}

// inputLine is one line read from the menu input, or the read error that
// ended it.
type inputLine struct {
	text string
	err  error
}

// New starts reading in immediately on a dedicated goroutine so prompts can
// be abandoned when the context passed to Run is cancelled.
func New(products repo.ProductRepository, in io.Reader, out io.Writer, p *message.Printer, logger *logrus.Logger, opts Options) *Menu {
	m := &Menu{
		products: products,
		lines:    make(chan inputLine),
		out:      out,
		p:        p,
		logger:   logger,
		opts:     opts,
	}
	go m.readLines(bufio.NewReader(in))
	return m
}

// readLines forwards every line of r without its line ending and closes
// m.lines at end of input. Lines have no length limit.
func (m *Menu) readLines(r *bufio.Reader) {
	defer close(m.lines)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			m.lines <- inputLine{text: strings.TrimRight(line, "\r\n")}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				m.lines <- inputLine{err: fmt.Errorf("read input: %w", err)}
			}
			return
		}
	}
}

// Run loops over the main menu. It returns nil when the user exits or the
// input is exhausted, and ctx.Err() as soon as ctx is cancelled, including
// while waiting at a prompt.
func (m *Menu) Run(ctx context.Context) error {
	m.screen()
	m.println(i18n.Welcome)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		next, err := m.mainMenu(ctx)
		if err != nil {
			return endOfInput(err)
		}

		switch next {
		case stateExit:
			m.screen()
			m.println(i18n.Goodbye)
			m.logger.Debug("menu exited")
			return nil
		case stateAddProduct:
			err = m.addProduct(ctx)
		case stateRemoveProduct:
			err = m.removeProduct(ctx)
		case stateListProducts:
			err = m.listProducts()
		case stateFindProduct:
			err = m.findProduct(ctx)
		default:
			m.println(i18n.InvalidOption)
		}
		if err != nil {
			return endOfInput(err)
		}

		if err := m.pause(ctx); err != nil {
			return endOfInput(err)
		}
	}
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (m *Menu) mainMenu(ctx context.Context) (state, error) {
	m.screen()
	m.println(i18n.MainMenu)
	m.println(i18n.OptionAdd)
	m.println(i18n.OptionRemove)
	m.println(i18n.OptionList)
	m.println(i18n.OptionFind)
	m.println(i18n.OptionExit)

	choice, err := m.prompt(ctx, i18n.ChooseOption)
	if err != nil {
		return stateMainMenu, err
	}
	next, ok := choices[strings.TrimSpace(choice)]
	if !ok {
		m.logger.WithField("choice", choice).Info("invalid menu choice")
		return stateMainMenu, nil
	}
	return next, nil
}

// screen starts a new screen with the banner.
func (m *Menu) screen() {
	if m.opts.ClearScreen {
		fmt.Fprint(m.out, clearSequence)
	}
	m.println(i18n.Banner)
}

func (m *Menu) println(key string, args ...any) {
	m.p.Fprintf(m.out, key, args...)
	fmt.Fprintln(m.out)
}

// prompt prints key without a newline and waits for one line of input.
// It returns io.EOF once the input is exhausted and ctx.Err() if ctx is
// cancelled first.
func (m *Menu) prompt(ctx context.Context, key string) (string, error) {
	fmt.Fprint(m.out, m.p.Sprintf(key))
	select {
	case <-ctx.Done():
		fmt.Fprintln(m.out)
		return "", ctx.Err()
	case line, ok := <-m.lines:
		if !ok {
			fmt.Fprintln(m.out)
			return "", io.EOF
		}
		return line.text, line.err
	}
}

func (m *Menu) pause(ctx context.Context) error {
	if !m.opts.Pause {
		return nil
	}
	_, err := m.prompt(ctx, i18n.Pause)
	return err
}
