package notify

import "github.com/nhle/boosted-portal/internal/model"

// Seed returns the notifications shown at startup. There is no notification
// service behind the portal yet; a deployment would fetch these instead.
func Seed() Feed {
	return Feed{
		{
			ID:      "1",
			Title:   "Nómina Aprobada",
			Message: "Tu pago de Febrero ha sido procesado correctamente. Los fondos estarán disponibles en 24 horas.",
			Time:    "Hace 10 min",
			Read:    false,
			Type:    model.NotificationSuccess,
		},
		{
			ID:      "2",
			Title:   "Recordatorio Evaluación",
			Message: "Tienes pendiente completar tu autoevaluación de Q1. La fecha límite es este viernes.",
			Time:    "Hace 2 horas",
			Read:    false,
			Type:    model.NotificationWarning,
		},
		{
			ID:      "3",
			Title:   "Nueva Política de Trabajo",
			Message: "Se ha actualizado la política de trabajo híbrido. Por favor revisa el documento adjunto en la sección de soporte.",
			Time:    "Ayer",
			Read:    true,
			Type:    model.NotificationInfo,
		},
		{
			ID:      "4",
			Title:   "Mantenimiento de Sistema",
			Message: "El portal estará inactivo el sábado por la noche para mantenimiento programado de 22:00 a 06:00.",
			Time:    "Hace 2 días",
			Read:    true,
			Type:    model.NotificationAlert,
		},
		{
			ID:      "5",
			Title:   "Bienvenido al Portal",
			Message: "Explora las nuevas funcionalidades de tu portal de RRHH impulsado por IA.",
			Time:    "Hace 1 semana",
			Read:    true,
			Type:    model.NotificationInfo,
		},
	}
}
