package booking

import (
	"github.com/mabani-platform/MBN-BookingService/pkg/dbmetrics"
)

// DBExecutor интерфейс выполнения запросов, переиспользуется из dbmetrics
// Репозиторий одинаково работает с *sql.DB и с обёрткой метрик;
// транзакции начинает pkg/txmanager и передает сюда через контекст
type DBExecutor = dbmetrics.DBExecutor
