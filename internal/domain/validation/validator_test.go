package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, 6, 15, 14, 0, 0, 0, time.UTC)

func newTestValidator() *Validator {
	return New(func() time.Time { return today })
}

func validOccurrence() OccurrenceForm {
	return OccurrenceForm{
		Nota:                 "123456",
		Volumes:              "3",
		Tipo:                 "2",
		Solicitante:          "Maria",
		Cliente:              "Mercado Central",
		Transportadora:       "Rodonaves",
		Destino:              "Recife",
		Estado:               "pe",
		DataNota:             "2024-06-01",
		DataOcorrencia:       "2024-06-03",
		Ocorrencia:           "Duas caixas chegaram amassadas",
		StatusCliente:        "EM ABERTO",
		StatusTransportadora: "em aberto",
	}
}

func TestOccurrence_Valid(t *testing.T) {
	v := newTestValidator()
	f := validOccurrence()
	f.Solicitante = "  Maria  "

	require.NoError(t, v.Occurrence(&f))
	assert.Equal(t, "Maria", f.Solicitante, "fields are trimmed in place")
	assert.Equal(t, "PE", f.Estado)
}

func TestOccurrence_DateBeforeNota(t *testing.T) {
	v := newTestValidator()
	f := validOccurrence()
	f.DataNota = "2024-01-10"
	f.DataOcorrencia = "2024-01-05"

	errs, ok := AsErrors(v.Occurrence(&f))
	require.True(t, ok)
	assert.Equal(t, "Data da ocorrência não pode ser anterior à data da nota", errs["dataOcorrencia"])
	assert.Len(t, errs, 1)
}

func TestOccurrence_FieldRules(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(f *OccurrenceForm)
		field   string
		message string
	}{
		{"blank nota", func(f *OccurrenceForm) { f.Nota = "   " }, "nota", "Nota fiscal é obrigatória"},
		{"zero volumes", func(f *OccurrenceForm) { f.Volumes = "0" }, "volumes", "Volumes deve ser um número maior que zero"},
		{"text volumes", func(f *OccurrenceForm) { f.Volumes = "três" }, "volumes", "Volumes deve ser um número maior que zero"},
		{"unselected tipo", func(f *OccurrenceForm) { f.Tipo = "" }, "tipo", "Selecione o tipo da ocorrência"},
		{"unknown tipo", func(f *OccurrenceForm) { f.Tipo = "42" }, "tipo", "Tipo de ocorrência inválido"},
		{"short cliente", func(f *OccurrenceForm) { f.Cliente = " ab " }, "cliente", "Cliente deve ter pelo menos 3 caracteres"},
		{"unselected estado", func(f *OccurrenceForm) { f.Estado = "" }, "estado", "Selecione o estado"},
		{"future nota", func(f *OccurrenceForm) { f.DataNota = "2024-06-16" }, "dataNota", "Data da nota não pode ser futura"},
		{"bad ocorrencia date", func(f *OccurrenceForm) { f.DataOcorrencia = "03/06/2024" }, "dataOcorrencia", "Data da ocorrência inválida"},
		{"missing ocorrencia date", func(f *OccurrenceForm) { f.DataOcorrencia = "" }, "dataOcorrencia", "Data da ocorrência é obrigatória"},
		{"short description", func(f *OccurrenceForm) { f.Ocorrencia = "amassado" }, "ocorrencia", "Descrição da ocorrência deve ter pelo menos 10 caracteres"},
		{"short obs", func(f *OccurrenceForm) { f.Obs = "ok" }, "obs", "Observação deve ter pelo menos 5 caracteres"},
		{"unselected status", func(f *OccurrenceForm) { f.StatusCliente = "" }, "statusCliente", "Selecione o status do cliente"},
		{"unknown status", func(f *OccurrenceForm) { f.StatusTransportadora = "talvez" }, "statusTransportadora", "Status da transportadora inválido"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := newTestValidator()
			f := validOccurrence()
			tc.mutate(&f)

			errs, ok := AsErrors(v.Occurrence(&f))
			require.True(t, ok, "expected validation errors")
			assert.Equal(t, tc.message, errs[tc.field])
		})
	}
}

func TestOccurrence_TodayIsNotFuture(t *testing.T) {
	v := newTestValidator()
	f := validOccurrence()
	f.DataOcorrencia = "2024-06-15"
	assert.NoError(t, v.Occurrence(&f))
}

func TestOccurrence_OptionalObs(t *testing.T) {
	v := newTestValidator()
	f := validOccurrence()
	f.Obs = "   "
	assert.NoError(t, v.Occurrence(&f), "blank obs counts as absent")
}

func TestOccurrence_FutureDateKeepsFieldMessage(t *testing.T) {
	v := newTestValidator()
	f := validOccurrence()
	f.DataNota = "2024-07-05"
	f.DataOcorrencia = "2024-07-01"

	errs, ok := AsErrors(v.Occurrence(&f))
	require.True(t, ok)
	assert.Equal(t, "Data da nota não pode ser futura", errs["dataNota"])
	assert.Equal(t, "Data da ocorrência não pode ser futura", errs["dataOcorrencia"], "field rule wins over the ordering rule")
}

func TestOccurrenceField(t *testing.T) {
	v := newTestValidator()
	f := validOccurrence()
	f.Cliente = "ab"
	f.Ocorrencia = "curto"

	assert.NotEmpty(t, v.OccurrenceField(f, "cliente"))
	f.Cliente = "abc"
	assert.Empty(t, v.OccurrenceField(f, "cliente"), "cliente clears even though ocorrencia still fails")
	assert.NotEmpty(t, v.OccurrenceField(f, "ocorrencia"))
}

func TestErrors_First(t *testing.T) {
	errs := Errors{"ocorrencia": "x", "cliente": "y"}
	assert.Equal(t, "cliente", errs.First(OccurrenceFieldOrder))
	assert.Contains(t, errs.Error(), "cliente: y")
}

func TestExpedicao(t *testing.T) {
	v := newTestValidator()

	ok := ExpedicaoForm{Nota: "123", Cliente: "ACME", DataNota: "2024-06-14", Volumes: "5"}
	require.NoError(t, v.Expedicao(&ok))

	bad := ExpedicaoForm{Nota: "-1", Cliente: "A", DataNota: "2030-01-01", Volumes: "x"}
	errs, isVal := AsErrors(v.Expedicao(&bad))
	require.True(t, isVal)
	assert.Equal(t, "Nota fiscal deve ser um número maior que zero", errs["nota"])
	assert.Contains(t, errs, "cliente")
	assert.Contains(t, errs, "dataNota")
	assert.Contains(t, errs, "volumes")
	assert.Equal(t, "nota", errs.First(ExpedicaoFieldOrder))
}

func TestDriver(t *testing.T) {
	v := newTestValidator()

	f := DriverForm{Motorista: "João", Cpf: "111.444.777-35", Placa: "abc-1234"}
	require.NoError(t, v.Driver(&f))
	assert.Equal(t, "11144477735", f.Cpf)
	assert.Equal(t, "ABC1234", f.Placa)

	short := DriverForm{Motorista: "João", Cpf: "111.444.777-3", Placa: "AB-12"}
	errs, ok := AsErrors(v.Driver(&short))
	require.True(t, ok)
	assert.Equal(t, "CPF deve conter 11 dígitos", errs["cpf"])
	assert.Equal(t, "Placa deve conter 7 caracteres", errs["placa"])

	long := DriverForm{Motorista: "João", Cpf: "111444777351", Placa: "ABC12345"}
	errs, ok = AsErrors(v.Driver(&long))
	require.True(t, ok)
	assert.Contains(t, errs, "cpf")
	assert.Contains(t, errs, "placa")
}

func TestReceiver(t *testing.T) {
	v := newTestValidator()
	f := ReceiverForm{RecebedorNome: "Ana", RecebedorCpf: "52998224725", RecebedorPlaca: "bra2e19"}
	require.NoError(t, v.Receiver(&f))
	assert.Equal(t, "BRA2E19", f.RecebedorPlaca)

	empty := ReceiverForm{}
	errs, ok := AsErrors(v.Receiver(&empty))
	require.True(t, ok)
	assert.Equal(t, "Nome do recebedor é obrigatório", errs["recebedorNome"])
	assert.Equal(t, "CPF do recebedor é obrigatório", errs["recebedorCpf"])
}

func TestNormalizeCPF(t *testing.T) {
	inputs := []string{"", "abc", "111.444.777-35", "1234567890", "123456789012", " 0 0 0 ", "١٢٣"}
	for _, in := range inputs {
		once := NormalizeCPF(in)
		assert.Equal(t, once, NormalizeCPF(once), "idempotent for %q", in)
		for _, r := range once {
			assert.True(t, r >= '0' && r <= '9')
		}
	}
	assert.Equal(t, "11144477735", NormalizeCPF("111.444.777-35"))
}

func TestNormalizePlaca(t *testing.T) {
	assert.Equal(t, "ABC1D23", NormalizePlaca(" abc-1d23 "))
	assert.Equal(t, "", NormalizePlaca("--"))
	assert.Equal(t, "BC1", NormalizePlaca("ábc1"))
}
