package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"outcomes-service/internal/app/services/core/assessments"
	"outcomes-service/internal/app/services/core/instruments"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	commandPrevious = "p"
	commandNext     = "n"
	commandReset    = "r"
	commandQuit     = "q"
)

var errQuit = errors.New("quit")

// Wizard runs one assessment on a line based terminal. It reads commands from
// in and writes prompts to out.
type Wizard struct {
	Log        *logrus.Logger
	Catalog    *instruments.Catalog
	JointKey   string
	Instrument string

	in         *bufio.Scanner
	out        io.Writer
	controller *assessments.SessionController
	completed  []assessments.Outcome
}

func NewWizard(log *logrus.Logger, catalog *instruments.Catalog, in io.Reader, out io.Writer) *Wizard {
	w := &Wizard{
		Log:     log,
		Catalog: catalog,
		in:      bufio.NewScanner(in),
		out:     out,
	}
	w.controller = assessments.NewSessionController(catalog, w.onComplete)
	return w
}

// Completed lists every outcome produced during Run, oldest first.
func (w *Wizard) Completed() []assessments.Outcome {
	return append([]assessments.Outcome(nil), w.completed...)
}

// Run drives the wizard until the user quits, input ends or one instrument is
// completed. Preset joint and instrument keys skip the matching prompts.
func (w *Wizard) Run() error {
	err := w.run()
	if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
		w.Log.Debug("wizard stopped before completion")
		return nil
	}
	return err
}

func (w *Wizard) run() error {
	jointKey, instrumentID := w.JointKey, w.Instrument
	for {
		if err := w.selectJoint(jointKey); err != nil {
			return err
		}
		if err := w.selectInstrument(instrumentID); err != nil {
			return err
		}

		restart, err := w.collect()
		if err != nil {
			return err
		}
		if !restart {
			return nil
		}
		// presets only apply to the first pass
		jointKey, instrumentID = "", ""
	}
}

func (w *Wizard) selectJoint(preset string) error {
	if preset != "" {
		return w.controller.SelectJoint(preset)
	}

	joints := w.Catalog.ListJoints()
	for {
		fmt.Fprintln(w.out, "Escolha a articulação:")
		for index, joint := range joints {
			fmt.Fprintf(w.out, "  %d) %s\n", index+1, joint.Name)
		}

		line, err := w.prompt()
		if err != nil {
			return err
		}
		index, ok := pick(line, len(joints))
		if !ok {
			fmt.Fprintln(w.out, "Opção inválida.")
			continue
		}
		return w.controller.SelectJoint(joints[index].Key)
	}
}

func (w *Wizard) selectInstrument(preset string) error {
	if preset != "" {
		return w.controller.SelectInstrument(preset)
	}

	joint := w.controller.Snapshot().Joint
	for {
		fmt.Fprintf(w.out, "Escolha o questionário para %s:\n", joint.Name)
		for index, instrument := range joint.Instruments {
			fmt.Fprintf(w.out, "  %d) %s - %s\n", index+1, instrument.ShortName, instrument.FullName)
		}

		line, err := w.prompt()
		if err != nil {
			return err
		}
		index, ok := pick(line, len(joint.Instruments))
		if !ok {
			fmt.Fprintln(w.out, "Opção inválida.")
			continue
		}
		return w.controller.SelectInstrument(joint.Instruments[index].ID)
	}
}

// collect walks the questions. It reports true when the user reset the run.
func (w *Wizard) collect() (bool, error) {
	for {
		snapshot := w.controller.Snapshot()
		if snapshot.State == assessments.StateCompleted {
			return false, w.printOutcome(*snapshot.Outcome)
		}

		w.printQuestion(snapshot)
		line, err := w.prompt()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case commandReset:
			w.controller.Reset()
			fmt.Fprintln(w.out, "Avaliação reiniciada.")
			return true, nil
		case commandPrevious:
			w.report(w.controller.Previous())
		case commandNext:
			w.report(w.controller.Next())
		default:
			value, err := strconv.Atoi(line)
			if err != nil {
				fmt.Fprintln(w.out, "Digite o valor de uma opção, p, n, r ou q.")
				continue
			}
			w.report(w.controller.Answer(snapshot.Question.ID, value))
		}
	}
}

func (w *Wizard) printQuestion(snapshot assessments.Snapshot) {
	question := snapshot.Question
	fmt.Fprintf(w.out, "\n[%d/%d] %s\n", snapshot.Cursor+1, snapshot.Instrument.QuestionCount(), question.Text)
	for _, option := range snapshot.Options {
		marker := " "
		if snapshot.Answer != nil && *snapshot.Answer == option.Value {
			marker = "*"
		}
		fmt.Fprintf(w.out, " %s %d) %s\n", marker, option.Value, option.Label)
	}
}

func (w *Wizard) printOutcome(outcome assessments.Outcome) error {
	summary := struct {
		Joint          string             `yaml:"joint"`
		Instrument     string             `yaml:"instrument"`
		Interpretation string             `yaml:"interpretation"`
		Result         map[string]float64 `yaml:"result"`
	}{
		Joint:          outcome.JointName,
		Instrument:     outcome.InstrumentName,
		Interpretation: outcome.Interpretation,
		Result:         outcome.Result.Fields(),
	}

	out, err := yaml.Marshal(summary)
	if err != nil {
		return err
	}
	fmt.Fprintln(w.out, "\nResultado:")
	_, err = w.out.Write(out)
	return err
}

// report prints rejected commands and keeps the wizard going.
func (w *Wizard) report(err error) {
	if err == nil {
		return
	}
	w.Log.WithError(err).Debug("command rejected")
	switch {
	case errors.Is(err, assessments.ErrInvalidAnswer):
		fmt.Fprintln(w.out, "Resposta inválida para esta pergunta.")
	case errors.Is(err, assessments.ErrIllegalTransition):
		fmt.Fprintln(w.out, "Comando não disponível agora.")
	default:
		fmt.Fprintln(w.out, err.Error())
	}
}

func (w *Wizard) prompt() (string, error) {
	fmt.Fprint(w.out, "> ")
	if !w.in.Scan() {
		if err := w.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	line := strings.TrimSpace(w.in.Text())
	if strings.EqualFold(line, commandQuit) {
		return "", errQuit
	}
	return line, nil
}

func (w *Wizard) onComplete(outcome assessments.Outcome) {
	w.completed = append(w.completed, outcome)
	w.Log.WithFields(logrus.Fields{
		"joint":      outcome.JointKey,
		"instrument": outcome.InstrumentID,
		"primary":    outcome.Result.Primary(),
	}).Info("assessment completed")
}

// pick accepts a 1-based menu index.
func pick(line string, size int) (int, bool) {
	index, err := strconv.Atoi(line)
	if err != nil || index < 1 || index > size {
		return 0, false
	}
	return index - 1, true
}
