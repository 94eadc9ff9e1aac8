package sample

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/dmitrymomot/recordkit/pkg/cpf"
	"github.com/dmitrymomot/recordkit/pkg/tabular"
)

var firstNames = []string{
	"Ana", "Beatriz", "Bruno", "Camila", "Carlos", "Clara", "Daniel",
	"Eduardo", "Felipe", "Fernanda", "Gabriel", "Gustavo", "Helena",
	"Isabela", "Lucas", "Luiza", "Marcos", "Mariana", "Paulo", "Rafael",
	"Renata", "Sofia", "Thiago", "Vitor",
}

var lastNames = []string{
	"Almeida", "Barbosa", "Cardoso", "Carvalho", "Costa", "Dias",
	"Ferreira", "Gomes", "Lima", "Martins", "Mendes", "Moreira",
	"Nascimento", "Oliveira", "Pereira", "Ribeiro", "Rocha", "Santos",
	"Silva", "Souza",
}

var emailDomains = []string{
	"example.com", "mail.com", "empresa.com.br", "cliente.net",
}

// Columns returns the header of generated tables, matching the built-in
// customer schema.
func Columns() []string {
	return []string{"name", "tax_id", "email", "contract_value", "age"}
}

// Generator produces plausible customer rows from a seeded random source,
// so the same seed always yields the same data. Not safe for concurrent
// use; create one generator per goroutine.
type Generator struct {
	rnd *rand.Rand
}

// New creates a generator for the given seed.
func New(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

func (g *Generator) pick(list []string) string {
	return list[g.rnd.Intn(len(list))]
}

// Record returns one valid customer row: a two-part name, a checksum-valid
// CPF, an email derived from the name, a contract value up to 50000.00 and
// an age between 18 and 90.
func (g *Generator) Record() []string {
	first := g.pick(firstNames)
	last := g.pick(lastNames)
	return []string{
		first + " " + last,
		cpf.Generate(g.rnd),
		strings.ToLower(first) + "." + strings.ToLower(last) + "@" + g.pick(emailDomains),
		fmt.Sprintf("%.2f", float64(g.rnd.Intn(5_000_000))/100),
		strconv.Itoa(18 + g.rnd.Intn(73)),
	}
}

// Defective returns a row that fails validation exactly as d describes:
// one field broken, the rest valid.
func (g *Generator) Defective(d Defect) []string {
	row := g.Record()
	switch d {
	case DefectBadChecksum:
		row[1] = breakChecksum(row[1])
	case DefectRepeatedDigits:
		digit := strconv.Itoa(g.rnd.Intn(10))
		formatted, _ := cpf.Format(strings.Repeat(digit, 11))
		row[1] = formatted
	case DefectBadEmail:
		row[2] = g.pick([]string{"missing-at.example.com", "user@domain", "user@domain.c"})
	case DefectEmptyName:
		row[0] = ""
	case DefectNegativeValue:
		row[3] = fmt.Sprintf("-%.2f", float64(1+g.rnd.Intn(100_000))/100)
	case DefectAgeZero:
		row[4] = "0"
	case DefectAgeTooHigh:
		row[4] = strconv.Itoa(151 + g.rnd.Intn(50))
	case DefectAgeNotNumeric:
		row[4] = g.pick([]string{"n/a", "unknown", "forty"})
	}
	return row
}

// Table builds a full sample table. errorRatio is the share of defective
// rows, in [0,1]; defective rows are spread evenly through the table and
// cycle through every defect class in declaration order, so any non-zero
// ratio over enough rows exercises each failure mode.
func (g *Generator) Table(count int, errorRatio float64) (*tabular.Table, error) {
	if count < 0 {
		return nil, ErrInvalidCount
	}
	if errorRatio < 0 || errorRatio > 1 || math.IsNaN(errorRatio) {
		return nil, ErrInvalidRatio
	}

	header, err := tabular.NewHeader(Columns())
	if err != nil {
		return nil, err
	}

	defects := Defects()
	bad := int(math.Round(float64(count) * errorRatio))
	records := make([]tabular.Record, 0, count)
	next := 0
	for i := 0; i < count; i++ {
		// Even spread: the running quota (i+1)*bad/count gains one exactly
		// bad times across the table.
		if (i+1)*bad/count > i*bad/count {
			records = append(records, tabular.NewRecord(i, header, g.Defective(defects[next%len(defects)])))
			next++
		} else {
			records = append(records, tabular.NewRecord(i, header, g.Record()))
		}
	}

	return &tabular.Table{Header: header, Records: records}, nil
}

// breakChecksum flips the last verification digit, keeping length and
// formatting intact.
func breakChecksum(valid string) string {
	digits := cpf.Clean(valid)
	last := int(digits[10] - '0')
	broken := digits[:10] + strconv.Itoa((last+1)%10)
	formatted, _ := cpf.Format(broken)
	return formatted
}
