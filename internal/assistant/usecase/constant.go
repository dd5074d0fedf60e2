package usecase

const (
	languageDirective = "Respond in the same language as the user (%s)."
	excerptHeader     = "--- Información obtenida del sitio oficial (%s) ---"
	excerptFooter     = "--- Fin del contenido web ---"
	excerptMissing    = "(No se pudo acceder al sitio: %s)"
	userPrefix        = "User: "
	botCue            = "Bot:"

	downloadPath         = "/descargar/"
	downloadReadyReply   = "Aquí tienes tu conversación guardada:\n%s"
	downloadMissingReply = "No he encontrado un historial aún. Escribe algo y vuelve a intentarlo más tarde."

	historyFileExt = ".txt"
)

// downloadVerbs trigger the history download command when the message also
// mentions "chat".
var downloadVerbs = []string{"descargar", "download"}
