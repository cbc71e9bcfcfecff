package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"cpu-scheduler-simulator/config"
	"cpu-scheduler-simulator/internal/requests"
	"cpu-scheduler-simulator/internal/responses"
	"cpu-scheduler-simulator/internal/schedulers"
	"cpu-scheduler-simulator/internal/validator"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	MultilevelFeedbackQueue(ctx *fiber.Ctx) error
	Schedule(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Algorithms(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmFCFS)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmSJF)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmRR)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmPriority)
}

func (s *SchedulerHandlerImpl) MultilevelFeedbackQueue(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmMLFQ)
}

// Schedule dispatches on the :algorithm path parameter.
func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	algorithm, err := schedulers.ParseAlgorithm(ctx.Params("algorithm"))
	if err != nil {
		return writeError(ctx, err)
	}
	return s.schedule(ctx, algorithm)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, ok, err := parseRequest(ctx)
	if !ok {
		return err
	}
	results, err := schedulers.RunAll(request.Processes(), s.options(request))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(responses.NewCompareResponse(results))
}

func (s *SchedulerHandlerImpl) Algorithms(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"algorithms":                  schedulers.Algorithms,
		"default_time_quantum":        s.config.RoundRobinTimeQuantum,
		"default_levels_time_quantum": s.config.MultilevelFeedbackQueueLevelsTimeQuantum,
	})
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, ok, err := parseRequest(ctx)
	if !ok {
		return err
	}
	result, err := schedulers.Run(algorithm, request.Processes(), s.options(request))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(responses.NewScheduleResponse(result))
}

// options fills quanta the request left out from the config.
func (s *SchedulerHandlerImpl) options(request requests.ScheduleRequests) schedulers.Options {
	opts := schedulers.Options{
		TimeQuantum:       s.config.RoundRobinTimeQuantum,
		LevelsTimeQuantum: s.config.MultilevelFeedbackQueueLevelsTimeQuantum,
	}
	if request.TimeQuantum != nil {
		opts.TimeQuantum = *request.TimeQuantum
	}
	if len(request.LevelsTimeQuantum) > 0 {
		opts.LevelsTimeQuantum = request.LevelsTimeQuantum
	}
	return opts
}

// parseRequest decodes the body. When it is malformed the 400 response has
// already been written and ok is false; err is the result of that write.
func parseRequest(ctx *fiber.Ctx) (request requests.ScheduleRequests, ok bool, err error) {
	if err := ctx.BodyParser(&request); err != nil {
		log.WithError(err).Debug("invalid request format")
		return request, false, ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: "invalid request format"})
	}
	return request, true, nil
}

func writeError(ctx *fiber.Ctx, err error) error {
	var validationErr *validator.ValidationError
	switch {
	case errors.As(err, &validationErr):
		body := responses.ErrorResponse{
			Error:     validationErr.Error(),
			Field:     validationErr.Field,
			ProcessId: validationErr.ProcessId,
		}
		if validationErr.Index >= 0 {
			index := validationErr.Index
			body.Index = &index
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(body)
	case errors.Is(err, validator.ErrEmptyInput):
		return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: err.Error(), Field: "jobs"})
	case errors.Is(err, schedulers.ErrUnknownAlgorithm):
		return ctx.Status(fiber.StatusNotFound).JSON(responses.ErrorResponse{Error: err.Error()})
	}
	log.WithError(err).Error("can not proccess request")
	return ctx.Status(fiber.StatusInternalServerError).JSON(responses.ErrorResponse{Error: "can not proccess request"})
}
