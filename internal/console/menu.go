package console

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/mamadbah2/boletim/internal/domain/models"
	"github.com/mamadbah2/boletim/internal/service/commands"
)

const (
	promptChoice = "Escolha uma opção: "
	promptName   = "Nome: "
	promptAge    = "Idade: "
	promptScores = "Notas separadas por vírgula (ex: 8,7,10): "
	promptSearch = "Digite o nome: "
)

// Menu is the interactive loop: show options, read a choice, run it, repeat.
type Menu struct {
	prompter   *Prompter
	dispatcher commands.Dispatcher
	session    *Session
	variant    models.Variant
	logger     *zap.Logger
}

// NewMenu wires the menu loop.
func NewMenu(prompter *Prompter, dispatcher commands.Dispatcher, variant models.Variant, logger *zap.Logger) *Menu {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Menu{
		prompter:   prompter,
		dispatcher: dispatcher,
		session:    NewSession(logger.Named("session")),
		variant:    variant,
		logger:     logger,
	}
}

// Run blocks until the user picks "0", the input ends or ctx is cancelled.
// Bad input never ends the loop.
func (m *Menu) Run(ctx context.Context) error {
	m.logger.Info("menu started", zap.String("variant", string(m.variant)))

	for !m.session.Done() {
		if ctx.Err() != nil {
			m.exit()
			break
		}

		m.showMenu()
		line, err := m.prompter.Ask(promptChoice)
		if err != nil {
			if errors.Is(err, io.EOF) {
				m.exit()
				break
			}
			return err
		}

		if err := m.dispatch(ctx, models.ParseCommand(line, m.variant)); err != nil {
			if errors.Is(err, io.EOF) {
				m.exit()
				break
			}
			return err
		}
	}

	m.logger.Info("menu stopped")
	return nil
}

func (m *Menu) showMenu() {
	m.prompter.Println(title("Menu"))
	for _, option := range menuOptions(m.variant) {
		m.prompter.Println(option)
	}
}

func (m *Menu) dispatch(ctx context.Context, cmd models.Command) error {
	state, ok, err := m.session.Begin(cmd)
	if err != nil {
		return err
	}
	if !ok {
		m.logger.Debug("invalid menu option", zap.String("raw", cmd.Raw))
		m.prompter.Println(msgInvalidOption)
		return nil
	}
	defer m.session.Finish()

	switch state {
	case StateRegistering:
		err = m.register(ctx)
	case StateListing:
		err = m.list(ctx)
	case StateSearching:
		err = m.search(ctx)
	case StateComputingAverages:
		err = m.averages(ctx)
	case StateClassifyingBySituation:
		err = m.situation(ctx)
	case StateExiting:
		m.exit()
		return nil
	}

	return m.report(ctx, err)
}

// report shows the reason for a rejected operation. Input exhaustion is passed up;
// anything else is logged and the loop carries on.
func (m *Menu) report(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) {
		return err
	}
	if msg := errorMessage(err); msg != "" {
		m.prompter.Println(msg)
		return nil
	}
	if ctx.Err() != nil {
		return io.EOF
	}

	m.logger.Error("menu operation failed", zap.String("state", string(m.session.State())), zap.Error(err))
	m.prompter.Println(msgUnexpected)
	return nil
}

func (m *Menu) register(ctx context.Context) error {
	m.prompter.Println(title("Cadastrar Estudante"))

	var req models.RegistrationRequest
	var err error
	if req.Name, err = m.prompter.Ask(promptName); err != nil {
		return err
	}
	if req.Age, err = m.prompter.Ask(promptAge); err != nil {
		return err
	}
	if req.Scores, err = m.prompter.Ask(promptScores); err != nil {
		return err
	}

	if _, err := m.dispatcher.Register(ctx, req); err != nil {
		return err
	}
	m.prompter.Println(msgRegistered)
	return nil
}

func (m *Menu) list(ctx context.Context) error {
	m.prompter.Println(title("Lista de Estudantes"))

	students, err := m.dispatcher.List(ctx)
	if err != nil {
		return err
	}
	if len(students) == 0 {
		m.prompter.Println(msgNoStudentsYet)
		return nil
	}
	for _, s := range students {
		m.prompter.Println(listLine(s, m.variant == models.VariantExtended))
	}
	return nil
}

func (m *Menu) search(ctx context.Context) error {
	m.prompter.Println(title("Buscar Estudante"))

	query, err := m.prompter.Ask(promptSearch)
	if err != nil {
		return err
	}

	matches, err := m.dispatcher.Search(ctx, query)
	if err != nil {
		return err
	}

	if m.variant != models.VariantExtended {
		if len(matches) == 0 {
			m.prompter.Println(msgNotFound)
			return nil
		}
		m.prompter.Println(msgFound)
		m.prompter.Println(detailLine(matches[0]))
		return nil
	}

	if len(matches) == 0 {
		m.prompter.Println(msgNoneFound)
		return nil
	}
	m.prompter.Printf("✅ %d estudante(s) encontrado(s):\n", len(matches))
	for _, match := range matches {
		m.prompter.Printf("%d. %s\n", match.Index, detailLine(match))
	}
	return nil
}

func (m *Menu) averages(ctx context.Context) error {
	m.prompter.Println(title("Médias"))

	report, err := m.dispatcher.Averages(ctx)
	if err != nil {
		return err
	}
	for _, line := range averagesLines(report) {
		m.prompter.Println(line)
	}
	return nil
}

func (m *Menu) situation(ctx context.Context) error {
	m.prompter.Println(title("Situação dos Estudantes"))

	report, err := m.dispatcher.Situation(ctx)
	if err != nil {
		return err
	}
	for _, line := range situationLines(report) {
		m.prompter.Println(line)
	}
	return nil
}

func (m *Menu) exit() {
	m.prompter.Println(msgExiting)
	m.session.Exit()
	if err := m.prompter.Close(); err != nil {
		m.logger.Warn("failed to close input", zap.Error(err))
	}
}
