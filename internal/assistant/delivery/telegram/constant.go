package telegram

const (
	startReply = "👋 ¡Hola! Soy Inteligencia Azteca.\n\nPregúntame sobre admisiones, becas, eventos, facultades o servicios de la universidad."
	helpReply  = "Escribe tu pregunta con tus propias palabras, por ejemplo:\n\"¿Qué becas ofrecen?\" o \"When is the admission deadline?\"\n\nPara descargar tu historial escribe: descargar chat"
	failReply  = "Ocurrió un error al procesar tu mensaje. Inténtalo de nuevo."
)
