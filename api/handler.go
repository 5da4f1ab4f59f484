package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"process-scheduler/config"
	"process-scheduler/internal/core"
	"process-scheduler/internal/logging"
	"process-scheduler/internal/metrics"
	"process-scheduler/internal/requests"
	"process-scheduler/internal/responses"
	"process-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config   *config.SchedulerConfig
	idle     schedulers.IdleStrategy
	logger   *slog.Logger
	recorder *metrics.Recorder
}

func NewSchedulerHandlerImpl(cfg *config.SchedulerConfig, logger *slog.Logger, recorder *metrics.Recorder) (*SchedulerHandlerImpl, error) {
	idle, err := schedulers.ParseIdleStrategy(cfg.IdleStrategy)
	if err != nil {
		return nil, err
	}
	return &SchedulerHandlerImpl{config: cfg, idle: idle, logger: logger, recorder: recorder}, nil
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityScheduling)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

// AllAlgorithms runs every policy over the same jobs. Round robin uses the
// request quantum, or the configured default when none is given.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	quantum, err := s.quantum(ctx, request, s.config.RoundRobinTimeQuantum)
	if err != nil {
		return s.fail(ctx, err)
	}

	processes, err := request.Processes()
	if err != nil {
		return s.fail(ctx, err)
	}
	all := responses.AllAlgorithmsResponse{Results: make([]responses.ScheduleResponse, 0, len(schedulers.Policies))}
	for _, policy := range schedulers.Policies {
		response, err := s.simulate(processes, policy, quantum)
		if err != nil {
			return s.fail(ctx, err)
		}
		all.Results = append(all.Results, response)
	}
	return ctx.JSON(all)
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, policy schedulers.Policy) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	var quantum int
	if policy == schedulers.RoundRobin {
		if quantum, err = s.quantum(ctx, request, 0); err != nil {
			return s.fail(ctx, err)
		}
	}
	processes, err := request.Processes()
	if err != nil {
		return s.fail(ctx, err)
	}
	response, err := s.simulate(processes, policy, quantum)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) simulate(processes []core.Process, policy schedulers.Policy, quantum int) (responses.ScheduleResponse, error) {
	result, err := schedulers.Simulate(processes, policy, quantum,
		schedulers.WithIdleStrategy(s.idle),
		schedulers.WithLogger(s.logger),
	)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	response := schedulers.GenerateResponse(processes, result)
	s.recorder.ObserveRun(string(policy), response.TotalTime, response.CpuUtilization)
	return response, nil
}

func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, error) {
	request := new(requests.ScheduleRequests)
	if err := ctx.BodyParser(request); err != nil {
		return nil, core.NewValidationError("body", "invalid request format: %v", err)
	}
	return request, nil
}

// quantum prefers the ?quantum= query parameter over the body field.
func (s *SchedulerHandlerImpl) quantum(ctx *fiber.Ctx, request *requests.ScheduleRequests, fallback int) (int, error) {
	if raw := ctx.Query("quantum"); raw != "" {
		return schedulers.ParseQuantum(raw)
	}
	if request.TimeQuantum != nil {
		if *request.TimeQuantum <= 0 {
			return 0, core.NewValidationError("time_quantum", "must be > 0, got %d", *request.TimeQuantum)
		}
		return *request.TimeQuantum, nil
	}
	if fallback > 0 {
		return fallback, nil
	}
	return 0, core.NewValidationError("time_quantum", "required for round robin")
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, core.ErrValidation) {
		s.recorder.ObserveRejected(ctx.Path())
		s.logger.Warn("rejected request", slog.String("path", ctx.Path()), logging.ErrAttr(err))
		return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: err.Error()})
	}
	s.logger.Error("can not process request", slog.String("path", ctx.Path()), logging.ErrAttr(err))
	return ctx.Status(fiber.StatusInternalServerError).JSON(responses.ErrorResponse{Error: "can not process request"})
}
