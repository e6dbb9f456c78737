//go:build rp2040

// Command pico-sweep: software-servo bring-up for RP2040/Pico.
//
// Build/flash (TinyGo):
//   tinygo flash -target pico ./cmd/pico-sweep
//
// Wiring assumptions (edit the constants as needed):
// - Servo signal wires on GP14 and GP15 (any free GPIOs work; no PWM slice
//   is used).
// - Status console on UART0, Pico defaults (TX=GP0, RX=GP1), 115200 baud.
// - Servos powered from their own 5V rail, grounds tied together.
package main

import (
	"fmt"
	"machine"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"softservo-go/provider/rp2"
	"softservo-go/provider/systimer"
	"softservo-go/softservo"
)

const (
	panPin  = 14
	tiltPin = 15

	consoleBaud = 115200
	stepDelay   = 50 * time.Millisecond
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(3 * time.Second)

	console := uartx.UART0
	_ = console.Configure(uartx.UARTConfig{
		BaudRate: consoleBaud,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	})
	fmt.Fprintf(console, "\r\n== pico-sweep: software servos on GP%d/GP%d ==\r\n", panPin, tiltPin)

	hw := rp2.New()
	timer := systimer.New()
	sub := softservo.New(hw, timer)

	pan := softservo.NewServo(sub)
	if _, err := pan.Attach(panPin); err != nil {
		fmt.Fprintf(console, "attach pan: %s\r\n", err)
		return
	}

	// The second servo goes through the drivers-servo PWM shim to exercise
	// the same path code written for hardware PWM uses.
	group := rp2.NewPWMGroup(sub)
	tiltCh, err := group.Channel(machine.Pin(tiltPin))
	if err != nil {
		fmt.Fprintf(console, "attach tilt: %s\r\n", err)
		return
	}

	angle, dir := 0, 5
	for {
		pan.Write(angle)
		group.Set(tiltCh, uint32(1000+(180-angle)*1000/180))

		fmt.Fprintf(console, "pan=%3d deg (%4d us)  tilt=%4d us\r\n",
			pan.Read(), pan.ReadMicroseconds(), 1000+(180-angle)*1000/180)

		angle += dir
		if angle <= 0 || angle >= 180 {
			dir = -dir
		}
		time.Sleep(stepDelay)
	}
}
