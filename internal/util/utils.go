package util

import (
	"errors"

	"cpu-scheduler-simulator/internal/core"
)

var ErrDivisionByZero = errors.New("cannot average an empty process set")

func CalculateAverage(proccessDetails []core.ProcessResult) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64, err error) {
	if len(proccessDetails) == 0 {
		err = ErrDivisionByZero
		return
	}

	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, proccess := range proccessDetails {
		waitingTimeSum += proccess.WaitingTime
		responseTimeSum += proccess.ResponseTime
		turnAroundTimeSum += proccess.TurnAroundTime
	}

	proccessCount := float64(len(proccessDetails))

	averageWaitingTime = waitingTimeSum / proccessCount
	averageResponseTime = responseTimeSum / proccessCount
	averageTurnAroundTime = turnAroundTimeSum / proccessCount
	return
}
