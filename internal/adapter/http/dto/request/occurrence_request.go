package request

import (
	"ocorrencias_logistica/internal/domain/entities"
	"ocorrencias_logistica/internal/domain/validation"
)

// OccurrenceRequest is the create/edit payload. A nil field was absent from
// the body: on edit it keeps the stored value. id, status and tracking are
// not accepted from clients.
type OccurrenceRequest struct {
	Nota                 *FlexString `json:"nota"`
	Volumes              *FlexString `json:"volumes"`
	Tipo                 *FlexString `json:"tipo"`
	Solicitante          *FlexString `json:"solicitante"`
	Cliente              *FlexString `json:"cliente"`
	Transportadora       *FlexString `json:"transportadora"`
	Destino              *FlexString `json:"destino"`
	Estado               *FlexString `json:"estado"`
	Pedido               *FlexString `json:"pedido"`
	DataNota             *FlexString `json:"dataNota"`
	DataOcorrencia       *FlexString `json:"dataOcorrencia"`
	UltimaOcorrencia     *FlexString `json:"ultimaOcorrencia"`
	Ocorrencia           *FlexString `json:"ocorrencia"`
	Obs                  *FlexString `json:"obs"`
	Pendencia            *FlexString `json:"pendencia"`
	StatusCliente        *FlexString `json:"statusCliente"`
	StatusTransportadora *FlexString `json:"statusTransportadora"`
}

// ApplyTo copies the fields present in the request onto o.
func (r OccurrenceRequest) ApplyTo(o *entities.Occurrence) {
	set := func(dst *string, src *FlexString) {
		if src != nil {
			*dst = string(*src)
		}
	}
	set(&o.Nota, r.Nota)
	set(&o.Volumes, r.Volumes)
	set(&o.Tipo, r.Tipo)
	set(&o.Solicitante, r.Solicitante)
	set(&o.Cliente, r.Cliente)
	set(&o.Transportadora, r.Transportadora)
	set(&o.Destino, r.Destino)
	set(&o.Estado, r.Estado)
	set(&o.Pedido, r.Pedido)
	set(&o.DataNota, r.DataNota)
	set(&o.DataOcorrencia, r.DataOcorrencia)
	set(&o.UltimaOcorrencia, r.UltimaOcorrencia)
	set(&o.Ocorrencia, r.Ocorrencia)
	set(&o.Obs, r.Obs)
	set(&o.Pendencia, r.Pendencia)
	set(&o.StatusCliente, r.StatusCliente)
	set(&o.StatusTransportadora, r.StatusTransportadora)
}

func (r OccurrenceRequest) ToEntity() entities.Occurrence {
	var o entities.Occurrence
	r.ApplyTo(&o)
	return o
}

// ReceiverRequest registers who picked up the volumes.
type ReceiverRequest struct {
	RecebedorNome  *FlexString `json:"recebedorNome"`
	RecebedorCpf   *FlexString `json:"recebedorCpf"`
	RecebedorPlaca *FlexString `json:"recebedorPlaca"`
}

func (r ReceiverRequest) ToForm() validation.ReceiverForm {
	return validation.ReceiverForm{
		RecebedorNome:  str(r.RecebedorNome),
		RecebedorCpf:   str(r.RecebedorCpf),
		RecebedorPlaca: str(r.RecebedorPlaca),
	}
}
