package main

import (
	"flag"
	"log"

	"github.com/tasknet/taskrt/internal/config"
)

func main() {
	output := flag.String("output", "taskrt.toml", "output path for config template")
	validate := flag.Bool("validate", false, "validate an existing config file instead of writing a template")
	input := flag.String("input", "taskrt.toml", "config path for validation")
	force := flag.Bool("force", false, "overwrite an existing config file")
	flag.Parse()

	if *validate {
		cfg, err := config.Load(*input)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("Validated config at %s: protocol_version=%d board_id=%d device_n=%d packet_size=%d fcs_policy=%s",
			*input, cfg.ProtocolVersion, cfg.BoardID, cfg.DeviceN, cfg.PacketSize, cfg.FCSPolicy)
		return
	}

	if err := config.WriteTemplate(*output, *force); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote config template to %s", *output)
}
