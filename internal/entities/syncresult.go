package entities

// SyncResult ответ авторитета на синхронизацию: слитая сессия (server wins)
// и счетчики применения. ChangesApplied покрывает префикс отправленного списка.
type SyncResult struct {
	Session           *DeliverySession
	ConflictsResolved int
	ChangesApplied    int
}

// RemoteScan ответ сервера на проверку трекинга, используется только когда
// локальный lookup промахнулся и связь есть.
type RemoteScan struct {
	Found         bool
	Package       *Package
	RoutePosition *int
}
