//go:build linux && !tinygo

// Command servoctl drives hobby servos from a Linux host (Raspberry Pi class
// hardware) over plain GPIO, using the software pulse scheduler. Calibration
// comes from a YAML file:
//
//	servos:
//	  - name: pan
//	    pin: 18
//	    min_us: 900
//	    max_us: 2100
//	    start: 90
//	sweep: true
//	step_ms: 50
//
// With sweep off, servoctl holds the start positions until interrupted.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"softservo-go/provider/hostgpio"
	"softservo-go/provider/systimer"
	"softservo-go/softservo"
)

func main() {
	cfgPath := flag.String("config", "servos.yaml", "path to the calibration file")
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		fatal("load config", err)
	}

	hw, err := hostgpio.New()
	if err != nil {
		fatal("init gpio", err)
	}
	timer := systimer.New()
	defer timer.Close()
	sub := softservo.New(hw, timer)

	servos := make([]*softservo.Servo, 0, len(cfg.Servos))
	for _, spec := range cfg.Servos {
		sv := softservo.NewServo(sub)
		ch, err := sv.AttachWithRange(spec.Pin, spec.MinUs, spec.MaxUs)
		if err != nil {
			fatal("attach "+spec.Name, err)
		}
		if spec.Start != nil {
			sv.Write(*spec.Start)
		}
		fmt.Printf("%s: pin %d on channel %d, %d..%d us\n",
			spec.Name, spec.Pin, ch, spec.MinUs, spec.MaxUs)
		servos = append(servos, sv)
	}
	defer func() {
		for _, sv := range servos {
			sv.Detach()
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	if !cfg.Sweep {
		<-stop
		return
	}

	step := time.NewTicker(time.Duration(cfg.StepMs) * time.Millisecond)
	defer step.Stop()

	angle, dir := 0, 5
	for {
		select {
		case <-stop:
			return
		case <-step.C:
			for _, sv := range servos {
				sv.Write(angle)
			}
			angle += dir
			if angle <= 0 || angle >= 180 {
				dir = -dir
			}
		}
	}
}

func fatal(op string, err error) {
	fmt.Fprintf(os.Stderr, "servoctl: %s: %s\n", op, err)
	os.Exit(1)
}
