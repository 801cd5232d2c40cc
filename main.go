// main.go
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/LilVoxy/coursework_dwh/validation"
)

// RunOnce запускает пакетную обработку один раз
func RunOnce() {
	runner, err := NewPipelineRunner()
	if err != nil {
		log.Fatalf("Ошибка при создании Pipeline Runner: %v", err)
	}
	defer runner.Close()

	if err := runner.ExecutePipeline(); err != nil {
		log.Fatalf("Ошибка при выполнении пакетной обработки: %v", err)
	}
}

// RunScheduled запускает пакетную обработку по расписанию вместе
// с HTTP API управления
func RunScheduled() {
	// Создаем контекст, который будет отменен при получении сигнала завершения
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Настраиваем обработку сигналов завершения
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)

	// Запускаем горутину для обработки сигналов
	go func() {
		<-signalCh
		log.Println("Получен сигнал завершения. Останавливаем Pipeline Runner...")
		cancel()
	}()

	runner, err := NewPipelineRunner()
	if err != nil {
		log.Fatalf("Ошибка при создании Pipeline Runner: %v", err)
	}
	defer runner.Close()

	// Запускаем планировщик
	runner.StartScheduler(ctx)
}

// RunValidation запускает только батарею проверок качества
// над текущим содержимым warehouse
func RunValidation() {
	runner, err := NewPipelineRunner()
	if err != nil {
		log.Fatalf("Ошибка при создании Pipeline Runner: %v", err)
	}
	defer runner.Close()

	results, err := runner.ExecuteValidation()
	if err != nil {
		log.Fatalf("Ошибка при выполнении проверок качества: %v", err)
	}

	for _, r := range results {
		if r.Passed() {
			log.Printf("Проверка %q пройдена", r.Name)
			continue
		}
		log.Printf("Проверка %q не пройдена (блокирующая: %v). Нарушителей: %d",
			r.Name, r.Blocking, len(r.OffendingKeys))
	}

	if validation.HasBlockingFailures(results) {
		log.Println("Обнаружены блокирующие нарушения: modeled слою доверять нельзя")
		os.Exit(1)
	}
}

func main() {
	// Параметры командной строки
	modePtr := flag.String("mode", "once", "Режим работы: once, scheduled или validate")

	flag.Parse()

	log.Println("Запуск Pipeline Runner в режиме:", *modePtr)

	switch *modePtr {
	case "once":
		RunOnce()
	case "scheduled":
		RunScheduled()
	case "validate":
		RunValidation()
	default:
		log.Println("Неизвестный режим работы:", *modePtr)
		log.Println("Доступные режимы: once, scheduled, validate")
		os.Exit(1)
	}

	log.Println("Pipeline Runner завершил работу")
}
