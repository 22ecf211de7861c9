package logger

import (
	"fmt"
	"log"
	"os"
)

// Logger é a interface de logging usada por controllers e repositórios.
// As mensagens recebem pares chave/valor variádicos, no estilo
// "erro ao criar venda", "error", err.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// SimpleLogger implementa Logger com um log.Logger por nível. Erros vão
// para stderr, o resto para stdout.
type SimpleLogger struct {
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	warnLogger  *log.Logger
}

// NewLogger cria uma nova instância de Logger
func NewLogger() Logger {
	return &SimpleLogger{
		infoLogger:  log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime),
		errorLogger: log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime),
		debugLogger: log.New(os.Stdout, "DEBUG: ", log.Ldate|log.Ltime),
		warnLogger:  log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime),
	}
}

func (l *SimpleLogger) Info(msg string, keysAndValues ...interface{}) {
	emit(l.infoLogger, msg, keysAndValues)
}

func (l *SimpleLogger) Error(msg string, keysAndValues ...interface{}) {
	emit(l.errorLogger, msg, keysAndValues)
}

func (l *SimpleLogger) Debug(msg string, keysAndValues ...interface{}) {
	emit(l.debugLogger, msg, keysAndValues)
}

func (l *SimpleLogger) Warn(msg string, keysAndValues ...interface{}) {
	emit(l.warnLogger, msg, keysAndValues)
}

// emit escreve a mensagem seguida dos pares como chave=valor. Um par
// incompleto no final é registrado como veio.
func emit(out *log.Logger, msg string, keysAndValues []interface{}) {
	args := make([]interface{}, 0, 1+len(keysAndValues)/2+1)
	args = append(args, msg)

	i := 0
	for ; i+1 < len(keysAndValues); i += 2 {
		args = append(args, fmt.Sprintf("%v=%v", keysAndValues[i], keysAndValues[i+1]))
	}
	if i < len(keysAndValues) {
		args = append(args, keysAndValues[i])
	}

	out.Println(args...)
}
