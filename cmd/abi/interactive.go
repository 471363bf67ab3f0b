package main

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/term"

	cairolang "github.com/dewi-tim/cairo-lang"
	"github.com/dewi-tim/cairo-lang/abi"
	"github.com/dewi-tim/cairo-lang/contract"
	"github.com/dewi-tim/cairo-lang/execution"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	contract *contract.Contract
	filename string
	result   string
	funcs    []funcInfo
	inputs   []textinput.Model
	selected int
	focusIdx int
	state    modelState
}

type funcInfo struct {
	name    string
	params  []abi.Field
	returns []abi.Field
}

type modelState int

const (
	stateSelectFunc modelState = iota
	stateInputArgs
	stateShowResult
)

func newInteractiveModel(filename string) *interactiveModel {
	return &interactiveModel{
		filename: filename,
		state:    stateSelectFunc,
	}
}

type loadedMsg struct {
	err      error
	contract *contract.Contract
	funcs    []funcInfo
}

type encodeResultMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadInterface
}

func (m *interactiveModel) loadInterface() tea.Msg {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	description, err := abi.Parse(data)
	if err != nil {
		return loadedMsg{err: err}
	}
	c, err := contract.New(execution.NewState(), description, big.NewInt(1))
	if err != nil {
		return loadedMsg{err: err}
	}

	var funcs []funcInfo
	for _, name := range c.FunctionNames() {
		fn, err := c.Function(name)
		if err != nil {
			return loadedMsg{err: err}
		}
		funcs = append(funcs, funcInfo{
			name:    name,
			params:  fn.Params(),
			returns: fn.Returns(),
		})
	}

	return loadedMsg{contract: c, funcs: funcs}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectFunc && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectFunc && m.selected < len(m.funcs)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectFunc:
				m.prepareInputs()
				if len(m.inputs) == 0 {
					return m, m.encodeCall
				}
				m.state = stateInputArgs

			case stateInputArgs:
				return m, m.encodeCall

			case stateShowResult:
				m.state = stateSelectFunc
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelectFunc
				m.inputs = nil
			case stateShowResult:
				m.state = stateSelectFunc
				m.result = ""
				m.err = nil
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.contract = msg.contract
		m.funcs = msg.funcs

	case encodeResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputArgs {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	f := m.funcs[m.selected]
	m.inputs = make([]textinput.Model, len(f.params))
	for i, p := range f.params {
		ti := textinput.New()
		ti.Placeholder = p.Type.String()
		ti.Prompt = p.Name + ": "
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *interactiveModel) encodeCall() tea.Msg {
	f := m.funcs[m.selected]

	fn, err := m.contract.Function(f.name)
	if err != nil {
		return encodeResultMsg{err: err}
	}

	args := make(map[string]any, len(m.inputs))
	for i, input := range m.inputs {
		value, err := parseArg(input.Value(), f.params[i].Type)
		if err != nil {
			return encodeResultMsg{err: fmt.Errorf("argument %q: %w", f.params[i].Name, err)}
		}
		args[f.params[i].Name] = value
	}

	inv, err := fn.Bind(args)
	if err != nil {
		return encodeResultMsg{err: err}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Selector: 0x%x\n", abi.Selector(f.name))
	fmt.Fprintf(&b, "Calldata (%d words):\n", len(inv.Calldata()))
	for _, w := range inv.Calldata() {
		fmt.Fprintf(&b, "  0x%x\n", w)
	}
	return encodeResultMsg{result: b.String()}
}

// parseArg turns one text field into an argument value: field elements come
// straight from decimal or hex text, composite values are entered as JSON.
func parseArg(value string, t *abi.Type) (any, error) {
	if t.Kind == abi.KindFelt {
		return cairolang.FeltFromString(strings.TrimSpace(value))
	}
	iter := jsoniter.Config{UseNumber: true}.Froze()
	var raw any
	if err := iter.UnmarshalFromString(value, &raw); err != nil {
		return nil, err
	}
	return convertValue(raw)
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.state != stateShowResult {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if len(m.funcs) == 0 {
		return "Loading interface..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("ABI Explorer"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectFunc:
		b.WriteString("Select a function to encode:\n\n")
		for i, f := range m.funcs {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + m.formatFunc(f)))
			} else {
				b.WriteString(cursor + m.formatFunc(f))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter encode • q quit"))

	case stateInputArgs:
		f := m.funcs[m.selected]
		b.WriteString(fmt.Sprintf("Encoding %s\n\n", funcStyle.Render(f.name)))
		for i, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString(" ")
			b.WriteString(typeStyle.Render(f.params[i].Type.String()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter encode • esc back"))

	case stateShowResult:
		f := m.funcs[m.selected]
		b.WriteString(fmt.Sprintf("Encoding of %s:\n\n", funcStyle.Render(f.name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatFunc(f funcInfo) string {
	var params []string
	for _, p := range f.params {
		params = append(params, p.Name+": "+typeStyle.Render(p.Type.String()))
	}
	result := ""
	if len(f.returns) > 0 {
		var returns []string
		for _, r := range f.returns {
			returns = append(returns, typeStyle.Render(r.Type.String()))
		}
		result = " -> (" + strings.Join(returns, ", ") + ")"
	}
	return funcStyle.Render(f.name) + "(" + strings.Join(params, ", ") + ")" + result
}

func runInteractive(filename string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode requires a terminal")
	}
	p := tea.NewProgram(newInteractiveModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
