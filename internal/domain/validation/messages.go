package validation

import "fmt"

var labels = map[string]string{
	"nota":                 "Nota fiscal",
	"volumes":              "Volumes",
	"tipo":                 "Tipo da ocorrência",
	"solicitante":          "Solicitante",
	"cliente":              "Cliente",
	"transportadora":       "Transportadora",
	"destino":              "Destino",
	"estado":               "Estado",
	"dataNota":             "Data da nota",
	"dataOcorrencia":       "Data da ocorrência",
	"ocorrencia":           "Descrição da ocorrência",
	"obs":                  "Observação",
	"statusCliente":        "Status do cliente",
	"statusTransportadora": "Status da transportadora",
	"motorista":            "Motorista",
	"cpf":                  "CPF",
	"placa":                "Placa",
	"recebedorNome":        "Nome do recebedor",
	"recebedorCpf":         "CPF do recebedor",
	"recebedorPlaca":       "Placa do recebedor",
}

// Required messages that do not follow "<label> é obrigatório".
var requiredMessages = map[string]string{
	"nota":                 "Nota fiscal é obrigatória",
	"tipo":                 "Selecione o tipo da ocorrência",
	"estado":               "Selecione o estado",
	"statusCliente":        "Selecione o status do cliente",
	"statusTransportadora": "Selecione o status da transportadora",
	"dataNota":             "Data da nota é obrigatória",
	"dataOcorrencia":       "Data da ocorrência é obrigatória",
	"ocorrencia":           "Descrição da ocorrência é obrigatória",
	"obs":                  "Observação é obrigatória",
	"placa":                "Placa é obrigatória",
	"recebedorPlaca":       "Placa do recebedor é obrigatória",
}

func message(field, tag, param string) string {
	label, ok := labels[field]
	if !ok {
		label = field
	}
	switch tag {
	case "required":
		if m, ok := requiredMessages[field]; ok {
			return m
		}
		return label + " é obrigatório"
	case "min":
		return fmt.Sprintf("%s deve ter pelo menos %s caracteres", label, param)
	case "len":
		if field == "cpf" || field == "recebedorCpf" {
			return fmt.Sprintf("%s deve conter %s dígitos", label, param)
		}
		return fmt.Sprintf("%s deve conter %s caracteres", label, param)
	case "positive":
		return label + " deve ser um número maior que zero"
	case "isodate":
		return label + " inválida"
	case "notfuture":
		return label + " não pode ser futura"
	case "afternota":
		return "Data da ocorrência não pode ser anterior à data da nota"
	case "tipo":
		return "Tipo de ocorrência inválido"
	default:
		return label + " inválido"
	}
}
