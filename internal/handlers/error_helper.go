package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/gaablh4z/v7-sistema-completo/internal/domain/schedule"
	"github.com/gaablh4z/v7-sistema-completo/internal/httperr"
)

// Mensagens apresentadas ao usuário para os códigos de negócio.
var businessMessages = map[string]string{
	"invalid_date":              "Data inválida.",
	"invalid_time":              "Hora inválida.",
	"invalid_year":              "Ano inválido.",
	"invalid_month":             "Mês inválido.",
	"vehicle_not_found":         "Veículo não encontrado.",
	"service_not_found":         "Serviço não encontrado.",
	"no_services_selected":      "Selecione pelo menos um serviço.",
	"appointment_not_found":     "Agendamento não encontrado.",
	"appointment_not_completed": "Só é possível avaliar agendamentos concluídos.",
	"invalid_rating":            "A avaliação deve ser de 1 a 5.",
	"review_already_exists":     "Este agendamento já foi avaliado.",
	"invalid_state":             "Status atual não permite esta operação.",
	"slot_taken":                "Este horário acabou de ser reservado. Escolha outro horário.",
}

// writeUsecaseError converte os erros dos usecases em respostas HTTP:
// violações do validador viram o mapa campo → motivo (422), códigos de
// negócio viram 400/404/409, o resto é erro interno.
func writeUsecaseError(c *gin.Context, err error) {
	var violations schedule.Violations
	if errors.As(err, &violations) {
		httperr.Violations(c, violations)
		return
	}

	var be httperr.BusinessError
	if errors.As(err, &be) {
		msg := businessMessages[be.Code]
		if msg == "" {
			msg = "Não foi possível concluir a operação."
		}

		switch be.Code {
		case "appointment_not_found", "vehicle_not_found", "service_not_found":
			httperr.NotFound(c, be.Code, msg)
		case "slot_taken", "review_already_exists":
			httperr.Conflict(c, be.Code, msg)
		default:
			httperr.BadRequest(c, be.Code, msg)
		}
		return
	}

	httperr.Internal(c, "internal_error", "Erro interno.")
}
