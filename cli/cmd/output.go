// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/pmax-drivers/powermax/pkg/capacity"
	"github.com/pmax-drivers/powermax/storage"
)

func WriteJSON(payload interface{}) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// WriteYAML renders the payload's JSON form as block-style YAML so field names match the REST API.
func WriteYAML(payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	var node yaml.Node
	if err = yaml.Unmarshal(data, &node); err != nil {
		return err
	}
	clearStyle(&node)
	data, err = yaml.Marshal(&node)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, string(data))
	return err
}

// clearStyle drops the flow and quoting styles a JSON document carries when parsed as YAML.
func clearStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		clearStyle(child)
	}
}

// writeStructured handles the json and yaml formats, reporting false when the caller must render itself.
func writeStructured(payload interface{}) (bool, error) {
	switch OutputFormat {
	case FormatJSON:
		return true, WriteJSON(payload)
	case FormatYAML:
		return true, WriteYAML(payload)
	default:
		return false, nil
	}
}

func newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	return table
}

func gibString(sizeGiB uint64) string {
	return capacity.FormatGiB(float64(sizeGiB))
}

func location(volume *storage.Volume) string {
	if volume.ProviderLocation == nil {
		return ""
	}
	return volume.ProviderLocation.DeviceID
}

func WriteVolumes(volumes []*storage.Volume) error {
	if done, err := writeStructured(volumes); done {
		return err
	}
	if OutputFormat == FormatName {
		for _, volume := range volumes {
			fmt.Fprintln(out, volume.ID)
		}
		return nil
	}

	table := newTable("ID", "Name", "Size", "Type", "Device", "Replication", "Attached")
	for _, volume := range volumes {
		table.Append([]string{
			volume.ID,
			volume.Name,
			gibString(volume.SizeGiB),
			volume.VolumeType.Name,
			location(volume),
			string(volume.ReplicationStatus),
			strings.Join(volume.AttachedHosts, ","),
		})
	}
	table.Render()
	return nil
}

func WriteSnapshots(snapshots []*storage.Snapshot) error {
	if done, err := writeStructured(snapshots); done {
		return err
	}
	if OutputFormat == FormatName {
		for _, snapshot := range snapshots {
			fmt.Fprintln(out, snapshot.ID)
		}
		return nil
	}

	table := newTable("ID", "Volume", "Size", "Created", "SnapVX Name")
	for _, snapshot := range snapshots {
		snapName := ""
		if snapshot.ProviderLocation != nil {
			snapName = snapshot.ProviderLocation.SnapName
		}
		table.Append([]string{
			snapshot.ID,
			snapshot.VolumeID,
			gibString(snapshot.VolumeSizeGiB),
			snapshot.Created,
			snapName,
		})
	}
	table.Render()
	return nil
}

func WriteConnectionInfo(info *storage.ConnectionInfo) error {
	if done, err := writeStructured(info); done {
		return err
	}

	table := newTable("Protocol", "Targets", "LUN")
	var targets []string
	switch info.DriverVolumeType {
	case storage.DriverVolumeTypeFC:
		targets = info.Data.TargetWWNs
	default:
		for i, iqn := range info.Data.TargetIQNs {
			if i < len(info.Data.TargetPortals) {
				iqn = info.Data.TargetPortals[i] + " " + iqn
			}
			targets = append(targets, iqn)
		}
		if len(targets) == 0 && info.Data.TargetIQN != "" {
			targets = []string{info.Data.TargetPortal + " " + info.Data.TargetIQN}
		}
	}
	table.Append([]string{info.DriverVolumeType, strings.Join(targets, "\n"), fmt.Sprint(info.Data.TargetLUN)})
	table.Render()
	return nil
}

func WriteStats(stats *storage.VolumeStats) error {
	if done, err := writeStructured(stats); done {
		return err
	}

	fmt.Fprintf(out, "Backend: %s  Protocol: %s  Driver: %s  Replication: %t\n", stats.BackendName,
		stats.StorageProtocol, stats.DriverVersion, stats.ReplicationEnabled)
	table := newTable("Pool", "Total", "Free", "Provisioned", "Location")
	for _, pool := range stats.Pools {
		table.Append([]string{
			pool.PoolName,
			capacity.FormatGiB(pool.TotalCapacityGB),
			capacity.FormatGiB(pool.FreeCapacityGB),
			capacity.FormatGiB(pool.ProvisionedCapacityGB),
			pool.Location,
		})
	}
	table.Render()
	return nil
}
