package validation

import "strings"

// OccurrenceForm is the create/edit occurrence form.
type OccurrenceForm struct {
	Nota                 string `json:"nota" validate:"required"`
	Volumes              string `json:"volumes" validate:"required,positive"`
	Tipo                 string `json:"tipo" validate:"required,tipo"`
	Solicitante          string `json:"solicitante" validate:"required,min=3"`
	Cliente              string `json:"cliente" validate:"required,min=3"`
	Transportadora       string `json:"transportadora" validate:"required,min=3"`
	Destino              string `json:"destino" validate:"required,min=3"`
	Estado               string `json:"estado" validate:"required"`
	Pedido               string `json:"pedido"`
	DataNota             string `json:"dataNota" validate:"required,isodate,notfuture"`
	DataOcorrencia       string `json:"dataOcorrencia" validate:"required,isodate,notfuture"`
	Ocorrencia           string `json:"ocorrencia" validate:"required,min=10"`
	Obs                  string `json:"obs" validate:"omitempty,min=5"`
	StatusCliente        string `json:"statusCliente" validate:"required,substatus"`
	StatusTransportadora string `json:"statusTransportadora" validate:"required,substatus"`
}

// OccurrenceFieldOrder is the on-screen order used to pick the first error.
var OccurrenceFieldOrder = []string{
	"nota", "volumes", "tipo", "solicitante", "cliente", "transportadora",
	"destino", "estado", "pedido", "dataNota", "dataOcorrencia", "ocorrencia",
	"obs", "statusCliente", "statusTransportadora",
}

func (f *OccurrenceForm) normalize() {
	for _, p := range []*string{
		&f.Nota, &f.Volumes, &f.Tipo, &f.Solicitante, &f.Cliente, &f.Transportadora,
		&f.Destino, &f.Estado, &f.Pedido, &f.DataNota, &f.DataOcorrencia,
		&f.Ocorrencia, &f.Obs, &f.StatusCliente, &f.StatusTransportadora,
	} {
		*p = strings.TrimSpace(*p)
	}
	f.Estado = strings.ToUpper(f.Estado)
}

// ExpedicaoForm is the intake form for an invoice awaiting dispatch.
type ExpedicaoForm struct {
	Nota     string `json:"nota" validate:"required,positive"`
	Cliente  string `json:"cliente" validate:"required,min=3"`
	DataNota string `json:"dataNota" validate:"required,isodate,notfuture"`
	Volumes  string `json:"volumes" validate:"required,positive"`
}

var ExpedicaoFieldOrder = []string{"nota", "cliente", "dataNota", "volumes"}

func (f *ExpedicaoForm) normalize() {
	f.Nota = strings.TrimSpace(f.Nota)
	f.Cliente = strings.TrimSpace(f.Cliente)
	f.DataNota = strings.TrimSpace(f.DataNota)
	f.Volumes = strings.TrimSpace(f.Volumes)
}

// DriverForm identifies who takes an expedição.
type DriverForm struct {
	Motorista string `json:"motorista" validate:"required,min=3"`
	Cpf       string `json:"cpf" validate:"required,len=11"`
	Placa     string `json:"placa" validate:"required,len=7"`
}

var DriverFieldOrder = []string{"motorista", "cpf", "placa"}

func (f *DriverForm) normalize() {
	f.Motorista = strings.TrimSpace(f.Motorista)
	f.Cpf = NormalizeCPF(f.Cpf)
	f.Placa = NormalizePlaca(f.Placa)
}

// ReceiverForm identifies who picked up the volumes of an occurrence.
type ReceiverForm struct {
	RecebedorNome  string `json:"recebedorNome" validate:"required,min=3"`
	RecebedorCpf   string `json:"recebedorCpf" validate:"required,len=11"`
	RecebedorPlaca string `json:"recebedorPlaca" validate:"required,len=7"`
}

var ReceiverFieldOrder = []string{"recebedorNome", "recebedorCpf", "recebedorPlaca"}

func (f *ReceiverForm) normalize() {
	f.RecebedorNome = strings.TrimSpace(f.RecebedorNome)
	f.RecebedorCpf = NormalizeCPF(f.RecebedorCpf)
	f.RecebedorPlaca = NormalizePlaca(f.RecebedorPlaca)
}

// NormalizeCPF keeps only ASCII digits.
func NormalizeCPF(v string) string {
	var b strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizePlaca uppercases and keeps only ASCII letters and digits.
func NormalizePlaca(v string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(v) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
