package middleware

import (
	"github.com/gorilla/mux"
)

// Stack возвращает базовую цепочку middleware в порядке подключения
// Recovery стоит внутри Logging и Metrics: запрос с паникой попадает в access-лог и метрики как 500
// collector == nil отключает HTTP метрики
func Stack(logger Logger, collector HTTPMetrics) []mux.MiddlewareFunc {
	stack := []mux.MiddlewareFunc{RequestID, Logging(logger)}
	if collector != nil {
		stack = append(stack, Metrics(collector))
	}
	return append(stack, Recovery(logger))
}
