package repository

import (
	"strings"

	"ocorrencias_logistica/internal/domain/entities"
)

// Column positions are the only schema of a tab. Headers are written when a
// tab is created and never read back.

const (
	occID = iota
	occNota
	occVolumes
	occTipo
	occSolicitante
	occCliente
	occTransportadora
	occDestino
	occEstado
	occPedido
	occDataNota
	occDataOcorrencia
	occUltimaOcorrencia
	occOcorrencia
	occObs
	occPendencia
	occStatusCliente
	occStatusTransportadora
	occTracking
	occStatus
	occRecebedorNome
	occRecebedorCpf
	occRecebedorPlaca
	occDataRetirada
	occColumns
)

var OccurrenceHeader = []string{
	"ID", "NOTA", "VOLUMES", "TIPO", "SOLICITANTE", "CLIENTE", "TRANSPORTADORA",
	"DESTINO", "ESTADO", "PEDIDO", "DATA_NOTA", "DATA_OCORRENCIA",
	"ULTIMA_OCORRENCIA", "OCORRENCIA", "OBS", "PENDENCIA", "STATUS_CLIENTE",
	"STATUS_TRANSPORTADORA", "TRACKING", "STATUS", "RECEBEDOR_NOME",
	"RECEBEDOR_CPF", "RECEBEDOR_PLACA", "DATA_RETIRADA",
}

const (
	expID = iota
	expNota
	expCliente
	expDataNota
	expVolumes
	expStatus
	expMotorista
	expCpf
	expPlaca
	expDataExpedicao
	expColumns
)

var ExpedicaoHeader = []string{
	"ID", "NOTA", "CLIENTE", "DATA_NOTA", "VOLUMES", "STATUS", "MOTORISTA",
	"CPF", "PLACA", "DATA_EXPEDICAO",
}

const (
	stkFilial = iota
	stkEAN13
	stkCodigoProduto
	stkDescricao
	stkArmazem
	stkSaldoAtual
)

var StockHeader = []string{"FILIAL", "EAN13", "CODIGO_PRODUTO", "DESCRIÇÃO", "ARMAZÉM", "SALDO_ATUAL"}

// decodeOccurrenceRow maps a row positionally. ok is false for rows without
// an id or a nota.
func decodeOccurrenceRow(row []string) (entities.Occurrence, bool) {
	o := entities.Occurrence{
		ID:                   cell(row, occID),
		Nota:                 cell(row, occNota),
		Volumes:              cell(row, occVolumes),
		Tipo:                 cell(row, occTipo),
		Solicitante:          cell(row, occSolicitante),
		Cliente:              cell(row, occCliente),
		Transportadora:       cell(row, occTransportadora),
		Destino:              cell(row, occDestino),
		Estado:               cell(row, occEstado),
		Pedido:               cell(row, occPedido),
		DataNota:             normalizeDate(cell(row, occDataNota)),
		DataOcorrencia:       normalizeDate(cell(row, occDataOcorrencia)),
		UltimaOcorrencia:     normalizeDate(cell(row, occUltimaOcorrencia)),
		Ocorrencia:           cell(row, occOcorrencia),
		Obs:                  cell(row, occObs),
		Pendencia:            cell(row, occPendencia),
		StatusCliente:        cell(row, occStatusCliente),
		StatusTransportadora: cell(row, occStatusTransportadora),
		Tracking:             cell(row, occTracking),
		Status:               cell(row, occStatus),
		RecebedorNome:        cell(row, occRecebedorNome),
		RecebedorCpf:         cell(row, occRecebedorCpf),
		RecebedorPlaca:       cell(row, occRecebedorPlaca),
		DataRetirada:         normalizeDateTime(cell(row, occDataRetirada)),
	}
	return o, present(o.ID, o.Nota)
}

func encodeOccurrenceRow(o entities.Occurrence) []string {
	row := make([]string, occColumns)
	row[occID] = o.ID
	row[occNota] = o.Nota
	row[occVolumes] = o.Volumes
	row[occTipo] = o.Tipo
	row[occSolicitante] = o.Solicitante
	row[occCliente] = o.Cliente
	row[occTransportadora] = o.Transportadora
	row[occDestino] = o.Destino
	row[occEstado] = o.Estado
	row[occPedido] = o.Pedido
	row[occDataNota] = o.DataNota
	row[occDataOcorrencia] = o.DataOcorrencia
	row[occUltimaOcorrencia] = o.UltimaOcorrencia
	row[occOcorrencia] = o.Ocorrencia
	row[occObs] = o.Obs
	row[occPendencia] = o.Pendencia
	row[occStatusCliente] = o.StatusCliente
	row[occStatusTransportadora] = o.StatusTransportadora
	row[occTracking] = o.Tracking
	row[occStatus] = o.Status
	row[occRecebedorNome] = o.RecebedorNome
	row[occRecebedorCpf] = o.RecebedorCpf
	row[occRecebedorPlaca] = o.RecebedorPlaca
	row[occDataRetirada] = o.DataRetirada
	return row
}

func decodeExpedicaoRow(row []string) (entities.Expedicao, bool) {
	e := entities.Expedicao{
		ID:            cell(row, expID),
		Nota:          cell(row, expNota),
		Cliente:       cell(row, expCliente),
		DataNota:      normalizeDate(cell(row, expDataNota)),
		Volumes:       cell(row, expVolumes),
		Status:        entities.ExpedicaoStatus(cell(row, expStatus)),
		Motorista:     cell(row, expMotorista),
		Cpf:           cell(row, expCpf),
		Placa:         cell(row, expPlaca),
		DataExpedicao: normalizeDateTime(cell(row, expDataExpedicao)),
	}
	return e, present(e.ID, e.Nota)
}

func encodeExpedicaoRow(e entities.Expedicao) []string {
	row := make([]string, expColumns)
	row[expID] = e.ID
	row[expNota] = e.Nota
	row[expCliente] = e.Cliente
	row[expDataNota] = e.DataNota
	row[expVolumes] = e.Volumes
	row[expStatus] = string(e.Status)
	row[expMotorista] = e.Motorista
	row[expCpf] = e.Cpf
	row[expPlaca] = e.Placa
	row[expDataExpedicao] = e.DataExpedicao
	return row
}

// decodeStockRow skips rows without an EAN.
func decodeStockRow(row []string) (entities.Stock, bool) {
	s := entities.Stock{
		Filial:        cell(row, stkFilial),
		EAN13:         cell(row, stkEAN13),
		CodigoProduto: cell(row, stkCodigoProduto),
		Descricao:     cell(row, stkDescricao),
		Armazem:       cell(row, stkArmazem),
		SaldoAtual:    cell(row, stkSaldoAtual),
	}
	return s, present(s.EAN13)
}

func present(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}
