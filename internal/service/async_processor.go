package service

import (
	"sync"

	"github.com/avc-dev/link-shortener/internal/model"
)

// CodeValidator определяет функцию для проверки кода перед обработкой
type CodeValidator func(code model.Code) bool

// AsyncProcessor проверяет коды пулом воркеров и сливает результаты в один канал (fanIn)
type AsyncProcessor struct {
	numWorkers int
}

// NewAsyncProcessor создает AsyncProcessor с заданным числом воркеров
func NewAsyncProcessor(numWorkers int) *AsyncProcessor {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return &AsyncProcessor{numWorkers: numWorkers}
}

// ProcessWithWorkers прогоняет коды через validator и передаёт прошедшие проверку в processor.
// Порядок кодов в processor не гарантируется, дубликаты отбрасываются
func (p *AsyncProcessor) ProcessWithWorkers(
	codes []model.Code,
	validator CodeValidator,
	processor func(validCodes []model.Code),
) {
	if len(codes) == 0 {
		return
	}

	numWorkers := min(p.numWorkers, len(codes))

	codesChan := make(chan model.Code)
	go func() {
		defer close(codesChan)
		seen := make(map[model.Code]struct{}, len(codes))
		for _, code := range codes {
			if _, dup := seen[code]; dup {
				continue
			}
			seen[code] = struct{}{}
			codesChan <- code
		}
	}()

	// Каждый воркер пишет в свой канал
	workerChannels := make([]chan model.Code, numWorkers)
	for i := range workerChannels {
		workerChannels[i] = make(chan model.Code)

		go func(output chan<- model.Code) {
			defer close(output)
			for code := range codesChan {
				if validator(code) {
					output <- code
				}
			}
		}(workerChannels[i])
	}

	var validCodes []model.Code
	for code := range fanIn(workerChannels...) {
		validCodes = append(validCodes, code)
	}

	if len(validCodes) > 0 {
		processor(validCodes)
	}
}

// fanIn сливает несколько каналов в один
func fanIn(channels ...chan model.Code) <-chan model.Code {
	out := make(chan model.Code)

	var wg sync.WaitGroup
	for _, ch := range channels {
		wg.Add(1)
		go func(ch <-chan model.Code) {
			defer wg.Done()
			for code := range ch {
				out <- code
			}
		}(ch)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
