package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mamadbah2/boletim/internal/domain/models"
	"github.com/mamadbah2/boletim/internal/service/commands"
	"github.com/mamadbah2/boletim/internal/service/reporting"
)

const (
	msgInvalidOption = "Opção inválida!"
	msgExiting       = "Saindo..."
	msgRegistered    = "✅ Estudante cadastrado!"
	msgNoStudentsYet = "Nenhum estudante cadastrado."
	msgNoStudents    = "Não há estudantes cadastrados."
	msgFound         = "✅ Encontrado:"
	msgNotFound      = "❌ Não encontrado."
	msgNoneFound     = "❌ Nenhum estudante encontrado."
	msgUnexpected    = "❌ Não foi possível concluir a operação."
	msgEmptyBucket   = "  (nenhum)"
)

// errorReplies maps validation failures to the message shown to the user.
var errorReplies = []struct {
	err     error
	message string
}{
	{commands.ErrNameRequired, "❌ Nome é obrigatório."},
	{commands.ErrAgeNotInteger, "❌ Idade deve ser um número inteiro válido."},
	{commands.ErrAgeNegative, "❌ Idade não pode ser negativa."},
	{commands.ErrNegativeScore, "❌ Não são permitidos números negativos nas notas."},
	{commands.ErrNoValidScores, "❌ Informe pelo menos uma nota válida (0 a 10)."},
	{commands.ErrEmptyQuery, "❌ Digite algo para buscar."},
	{reporting.ErrNoStudents, msgNoStudents},
}

// errorMessage returns the user-facing text for err, or "" when err is not a known rejection.
func errorMessage(err error) string {
	for _, r := range errorReplies {
		if errors.Is(err, r.err) {
			return r.message
		}
	}
	return ""
}

func title(text string) string {
	return "\n=== " + strings.ToUpper(text) + " ==="
}

func menuOptions(variant models.Variant) []string {
	if variant == models.VariantExtended {
		return []string{
			"1 - Cadastrar estudante",
			"2 - Listar estudantes",
			"3 - Buscar estudante",
			"4 - Calcular médias (individual, geral e maior média)",
			"5 - Listar por situação (aprovados/recuperação/reprovados)",
			"0 - Sair",
		}
	}
	return []string{
		"1 - Cadastrar estudante",
		"2 - Listar estudantes",
		"3 - Buscar estudante",
		"4 - Calcular médias",
		"0 - Sair",
	}
}

func formatAverage(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatScores(scores []float64) string {
	parts := make([]string, len(scores))
	for i, s := range scores {
		parts[i] = strconv.FormatFloat(s, 'f', -1, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func listLine(entry models.StudentAverage, withAverage bool) string {
	line := fmt.Sprintf("%d. %s - Idade: %d", entry.Index, entry.Student.Name, entry.Student.Age)
	if withAverage {
		line += " - Média: " + formatAverage(entry.Average)
	}
	return line
}

func detailLine(entry models.SearchMatch) string {
	return fmt.Sprintf("Nome: %s | Idade: %d | Notas: %s | Média: %s",
		entry.Student.Name, entry.Student.Age, formatScores(entry.Student.Scores), formatAverage(entry.Average))
}

func averagesLines(report models.AveragesReport) []string {
	lines := make([]string, 0, len(report.Students)+3)
	for _, s := range report.Students {
		lines = append(lines, fmt.Sprintf("%s → Média: %s", s.Student.Name, formatAverage(s.Average)))
	}
	lines = append(lines,
		"",
		"📊 Média geral da turma: "+formatAverage(report.ClassAverage),
		fmt.Sprintf("🏅 Maior média: %s (%s)", report.Top.Student.Name, formatAverage(report.Top.Average)),
	)
	return lines
}

func situationLines(report models.SituationReport) []string {
	var lines []string
	bucket := func(heading string, members []models.StudentAverage) {
		lines = append(lines, "", heading+":")
		if len(members) == 0 {
			lines = append(lines, msgEmptyBucket)
			return
		}
		for i, m := range members {
			lines = append(lines, fmt.Sprintf("  %d. %s — Média: %s", i+1, m.Student.Name, formatAverage(m.Average)))
		}
	}

	bucket("✅ Aprovados (média >= 7.0)", report.Pass)
	bucket("🟡 Recuperação (média entre 5.0 e 6.9)", report.Conditional)
	bucket("❌ Reprovados (média < 5.0)", report.Fail)
	return lines
}
