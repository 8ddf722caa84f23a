package entities

import "strings"

// DisplayStatus is the coarse status shown in lists and dashboards.
//
// It is always derived, never typed in by a user:
//   - generic free-text status columns go through NormalizeStatus
//   - occurrences derive it from statusCliente/statusTransportadora

type DisplayStatus string

const (
	DisplayPendente    DisplayStatus = "Pendente"
	DisplayEmAndamento DisplayStatus = "Em Andamento"
	DisplayResolvido   DisplayStatus = "Resolvido"
	DisplayCancelado   DisplayStatus = "Cancelado"
)

// NormalizeStatus maps free text to the closed DisplayStatus set.
// Matching is a case-insensitive substring test; Pendente is the fallback.
func NormalizeStatus(text string) DisplayStatus {
	s := strings.ToUpper(strings.TrimSpace(text))
	switch {
	case strings.Contains(s, "RESOLVIDO"):
		return DisplayResolvido
	case strings.Contains(s, "ABERTO"), strings.Contains(s, "ANDAMENTO"):
		return DisplayEmAndamento
	case strings.Contains(s, "CANCEL"):
		return DisplayCancelado
	default:
		return DisplayPendente
	}
}

// SubStatus is the per-party resolution state of an occurrence.

type SubStatus string

const (
	SubStatusEmAberto      SubStatus = "EM ABERTO"
	SubStatusResolvido     SubStatus = "RESOLVIDO"
	SubStatusFaltaDeProvas SubStatus = "Falta de provas"
)

// SubStatuses lists the accepted values in the order the form offers them.
var SubStatuses = []SubStatus{SubStatusEmAberto, SubStatusResolvido, SubStatusFaltaDeProvas}

// ParseSubStatus matches v case-insensitively against SubStatuses.
func ParseSubStatus(v string) (SubStatus, bool) {
	v = strings.TrimSpace(v)
	for _, s := range SubStatuses {
		if strings.EqualFold(v, string(s)) {
			return s, true
		}
	}
	return "", false
}

// IsClosedSubStatus reports whether v ends the party's side of the occurrence.
func IsClosedSubStatus(v string) bool {
	s, ok := ParseSubStatus(v)
	if !ok {
		return false
	}
	return s == SubStatusResolvido || s == SubStatusFaltaDeProvas
}
