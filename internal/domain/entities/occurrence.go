package entities

// OccurrenceType codes are stored in the sheet; labels are for display only.

type OccurrenceType string

var occurrenceTypeLabels = map[OccurrenceType]string{
	"1": "Falta de volume",
	"2": "Avaria",
	"3": "Extravio",
	"4": "Devolução",
	"5": "Atraso na entrega",
	"6": "Divergência de nota",
	"7": "Sobra de volume",
	"8": "Recusa do cliente",
	"9": "Outros",
}

// OccurrenceTypeOption is a code/label pair offered by the form.
type OccurrenceTypeOption struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// OccurrenceTypes returns the fixed code → label table ordered by code.
func OccurrenceTypes() []OccurrenceTypeOption {
	out := make([]OccurrenceTypeOption, 0, len(occurrenceTypeLabels))
	for _, code := range []OccurrenceType{"1", "2", "3", "4", "5", "6", "7", "8", "9"} {
		out = append(out, OccurrenceTypeOption{Code: string(code), Label: occurrenceTypeLabels[code]})
	}
	return out
}

// OccurrenceTypeLabel returns the label for code, or "" when unknown.
func OccurrenceTypeLabel(code string) string {
	return occurrenceTypeLabels[OccurrenceType(code)]
}

// IsOccurrenceType reports whether code belongs to the fixed table.
func IsOccurrenceType(code string) bool {
	_, ok := occurrenceTypeLabels[OccurrenceType(code)]
	return ok
}

// Occurrence is one shipment incident, one row of a branch tab.
//
// Every field travels as a string: the sheet is loosely typed and numeric
// looking cells (nota, volumes, pedido) are kept as the store returns them.
// Dates use the canonical yyyy-mm-dd form.
//
// Status and Tracking are derived columns. They are recomputed on every read
// and right before every write.

type Occurrence struct {
	ID                   string `json:"id"`
	Nota                 string `json:"nota"`
	Volumes              string `json:"volumes"`
	Tipo                 string `json:"tipo"`
	Solicitante          string `json:"solicitante"`
	Cliente              string `json:"cliente"`
	Transportadora       string `json:"transportadora"`
	Destino              string `json:"destino"`
	Estado               string `json:"estado"`
	Pedido               string `json:"pedido"`
	DataNota             string `json:"dataNota"`
	DataOcorrencia       string `json:"dataOcorrencia"`
	UltimaOcorrencia     string `json:"ultimaOcorrencia"`
	Ocorrencia           string `json:"ocorrencia"`
	Obs                  string `json:"obs"`
	Pendencia            string `json:"pendencia"`
	StatusCliente        string `json:"statusCliente"`
	StatusTransportadora string `json:"statusTransportadora"`
	Tracking             string `json:"tracking"`
	Status               string `json:"status"`
	RecebedorNome        string `json:"recebedorNome"`
	RecebedorCpf         string `json:"recebedorCpf"`
	RecebedorPlaca       string `json:"recebedorPlaca"`
	DataRetirada         string `json:"dataRetirada"`
}

// IsResolved is true only when both parties closed their side.
func (o Occurrence) IsResolved() bool {
	return IsClosedSubStatus(o.StatusCliente) && IsClosedSubStatus(o.StatusTransportadora)
}

// DeriveStatus is the display status implied by the two sub-statuses.
func (o Occurrence) DeriveStatus() DisplayStatus {
	if o.IsResolved() {
		return DisplayResolvido
	}
	return DisplayPendente
}
