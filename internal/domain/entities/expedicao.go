package entities

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidTransition = errors.New("invalid expedicao status transition")

// ExpedicaoStatus is the dispatch state of an invoice.
//
// Domain notes:
//   - The chain is forward-only: NF DISPONIVEIS -> AGUARDANDO -> EXPEDIDO.
//   - Records are only ever created in NF DISPONIVEIS.
//   - EXPEDIDO can be reached straight from NF DISPONIVEIS when the driver is
//     already at the dock.

type ExpedicaoStatus string

const (
	ExpedicaoNFDisponiveis ExpedicaoStatus = "NF DISPONIVEIS"
	ExpedicaoAguardando    ExpedicaoStatus = "AGUARDANDO"
	ExpedicaoExpedido      ExpedicaoStatus = "EXPEDIDO"
)

func (s ExpedicaoStatus) rank() int {
	switch ExpedicaoStatus(strings.ToUpper(strings.TrimSpace(string(s)))) {
	case ExpedicaoAguardando:
		return 1
	case ExpedicaoExpedido:
		return 2
	default:
		return 0
	}
}

// Driver identifies who took the volumes. Cpf and Placa are expected already
// normalized (digits only / uppercase alphanumerics).
type Driver struct {
	Nome  string
	Cpf   string
	Placa string
}

// Expedicao is one invoice waiting for or undergoing physical dispatch.
//
// Motorista/Cpf/Placa stay empty while the invoice is NF DISPONIVEIS and
// DataExpedicao stays empty until EXPEDIDO.

type Expedicao struct {
	ID            string          `json:"id"`
	Nota          string          `json:"nota"`
	Cliente       string          `json:"cliente"`
	DataNota      string          `json:"dataNota"`
	Volumes       string          `json:"volumes"`
	Status        ExpedicaoStatus `json:"status"`
	Motorista     string          `json:"motorista"`
	Cpf           string          `json:"cpf"`
	Placa         string          `json:"placa"`
	DataExpedicao string          `json:"dataExpedicao"`
}

// NewExpedicao builds a record in the only state creation allows.
func NewExpedicao(id, nota, cliente, dataNota, volumes string) Expedicao {
	return Expedicao{
		ID:       id,
		Nota:     nota,
		Cliente:  cliente,
		DataNota: dataNota,
		Volumes:  volumes,
		Status:   ExpedicaoNFDisponiveis,
	}
}

// MarkAguardando moves the record to AGUARDANDO. Re-applying it on an
// AGUARDANDO record just rewrites the same status.
func (e *Expedicao) MarkAguardando() error {
	if e.Status.rank() > ExpedicaoAguardando.rank() {
		return ErrInvalidTransition
	}
	e.Status = ExpedicaoAguardando
	return nil
}

// MarkExpedido stamps the driver and the dispatch timestamp.
func (e *Expedicao) MarkExpedido(d Driver, at time.Time) error {
	if e.Status.rank() >= ExpedicaoExpedido.rank() {
		return ErrInvalidTransition
	}
	e.Status = ExpedicaoExpedido
	e.Motorista = d.Nome
	e.Cpf = d.Cpf
	e.Placa = d.Placa
	e.DataExpedicao = at.Format(DateTimeLayout)
	return nil
}

// DateTimeLayout is how timestamps (dataExpedicao, dataRetirada) are written.
const DateTimeLayout = "2006-01-02 15:04:05"

// DateLayout is the canonical calendar date form.
const DateLayout = "2006-01-02"
