package request

import "ocorrencias_logistica/internal/domain/validation"

// ExpedicaoRequest registers an invoice for dispatch. Any status sent by the
// client is ignored.
type ExpedicaoRequest struct {
	Nota     *FlexString `json:"nota"`
	Cliente  *FlexString `json:"cliente"`
	DataNota *FlexString `json:"dataNota"`
	Volumes  *FlexString `json:"volumes"`
}

func (r ExpedicaoRequest) ToForm() validation.ExpedicaoForm {
	return validation.ExpedicaoForm{
		Nota:     str(r.Nota),
		Cliente:  str(r.Cliente),
		DataNota: str(r.DataNota),
		Volumes:  str(r.Volumes),
	}
}

type DriverRequest struct {
	Motorista *FlexString `json:"motorista"`
	Cpf       *FlexString `json:"cpf"`
	Placa     *FlexString `json:"placa"`
}

func (r DriverRequest) ToForm() validation.DriverForm {
	return validation.DriverForm{
		Motorista: str(r.Motorista),
		Cpf:       str(r.Cpf),
		Placa:     str(r.Placa),
	}
}

type RomaneioRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}
