package backup

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/healthstats/internal/telemetry/metrics"
	"github.com/2beens/healthstats/pkg"
)

// ExportBackupUnixSocketListenerSetup makes the main service listen for run
// reports of the backup cmd. The backup runs as a separate process, so it
// hands its metrics over a unix socket instead of pulling in the prometheus
// push gateway. Message format: "weeks::<count>||duration::<seconds>".
func ExportBackupUnixSocketListenerSetup(
	ctx context.Context,
	socketAddrDir, socketFileName string,
	instr *metrics.Manager,
) (net.Addr, error) {
	socket := filepath.Join(socketAddrDir, socketFileName)
	listener, err := net.Listen("unix", socket)
	if err != nil {
		return nil, fmt.Errorf("binding to unix socket %s: %w", socket, err)
	}

	if err := os.Chmod(socket, os.ModeSocket|0666); err != nil {
		return nil, err
	}

	go func() {
		go func() {
			<-ctx.Done()
			log.Debugln("export backup unix socket listener context done, closing listener")
			_ = listener.Close()
		}()

		for {
			select {
			case <-ctx.Done():
				return
			default:
				// Otherwise, continue accepting new connections.
			}

			conn, err := listener.Accept()
			if err != nil {
				log.Errorf("export backup unix socket listener conn accept: %s", err)
				return
			}
			log.Debugf("export backup unix socket got new conn: %s", conn.RemoteAddr().String())

			// a backup run report is a few dozen bytes, a minute is plenty
			if err := conn.SetDeadline(time.Now().Add(time.Minute)); err != nil {
				log.Errorf("failed to set conn timeout: %s", err)
				return
			}

			go func() {
				defer func() { _ = conn.Close() }()

				buf := make([]byte, 1024)
				n, err := conn.Read(buf)
				if err != nil {
					return
				}

				messageReceived := pkg.BytesToString(buf[:n])
				log.Infof("export backup unix socket received: %s", messageReceived)

				msgParts := strings.Split(messageReceived, "||")
				if len(msgParts) != 2 {
					log.Errorf("export backup conn, invalid message received: %s", messageReceived)
					return
				}

				sendExportBackupDurationInfo(msgParts[1], instr)
				sendExportBackupWeeksCount(msgParts[0], instr)

				_, err = conn.Write([]byte("ok"))
				if err != nil {
					log.Errorf("export backup conn, send response: %s", err)
				}
			}()
		}
	}()

	return listener.Addr(), nil
}

// TrySendMetrics reports a finished backup run to the main service. Best
// effort, a missing or dead listener only logs.
func TrySendMetrics(beginTimestamp time.Time, weeksUploaded int, socketAddrDir, socketFileName string) {
	socket := filepath.Join(socketAddrDir, socketFileName)
	conn, err := net.DialTimeout("unix", socket, 5*time.Second)
	if err != nil {
		log.Errorf("export backup metrics, dial %s: %s", socket, err)
		return
	}
	defer func() { _ = conn.Close() }()

	if err := conn.SetDeadline(time.Now().Add(time.Minute)); err != nil {
		log.Errorf("export backup metrics, set conn timeout: %s", err)
		return
	}

	duration := time.Since(beginTimestamp).Seconds()
	message := fmt.Sprintf("weeks::%d||duration::%f", weeksUploaded, duration)
	if _, err := conn.Write([]byte(message)); err != nil {
		log.Errorf("export backup metrics, send: %s", err)
		return
	}

	buf := make([]byte, 16)
	n, err := conn.Read(buf)
	if err != nil {
		log.Errorf("export backup metrics, read response: %s", err)
		return
	}

	if response := pkg.BytesToString(buf[:n]); response != "ok" {
		log.Errorf("export backup metrics, unexpected response: %s", response)
		return
	}

	log.Debugln("export backup metrics sent")
}

func sendExportBackupDurationInfo(durationInfoMsg string, metrics *metrics.Manager) {
	durationInfoParts := strings.Split(durationInfoMsg, "::")
	if len(durationInfoParts) != 2 {
		log.Errorf("export backup conn, invalid duration info received: %s", durationInfoMsg)
		return
	}

	durationInSec, err := strconv.ParseFloat(durationInfoParts[1], 64)
	if err != nil {
		log.Errorf("export backup conn, invalid duration info received: %s", err)
		return
	}

	metrics.HistExportBackupDuration.Observe(durationInSec)
}

func sendExportBackupWeeksCount(weeksCountInfoMsg string, metrics *metrics.Manager) {
	weeksCountInfoParts := strings.Split(weeksCountInfoMsg, "::")
	if len(weeksCountInfoParts) != 2 {
		log.Errorf("export backup conn, invalid weeks info received: %s", weeksCountInfoMsg)
		return
	}

	weeksCount, err := strconv.Atoi(weeksCountInfoParts[1])
	if err != nil {
		log.Errorf("export backup conn, invalid weeks counter: %s", err)
		return
	}

	metrics.CounterExportBackups.Add(float64(weeksCount))
}
