package models

import "time"

// JobKind is the closed set of deferred work items the worker knows how to run.
type JobKind string

const (
	JobListFolders         JobKind = "list_folders"
	JobEnrichFolderMembers JobKind = "enrich_folder_members"
	JobUpdateChannelTitles JobKind = "update_channel_titles"
	JobUpdateSelfName      JobKind = "update_self_name"
	JobResetAntiFlood      JobKind = "reset_anti_flood"
	JobBatchNotify         JobKind = "batch_notify"
	JobDeregisterChannel   JobKind = "deregister_channel"
	JobConnectivityAlarm   JobKind = "connectivity_alarm"
	JobThrottleAlarm       JobKind = "throttle_alarm"
	JobBlockBanned         JobKind = "block_banned"
	JobUnblockUser         JobKind = "unblock_user"
)

// IsQuery reports whether a job keeps its row and answers through Result.
func (k JobKind) IsQuery() bool {
	return k == JobListFolders || k == JobEnrichFolderMembers
}

func (k JobKind) Known() bool {
	switch k {
	case JobListFolders, JobEnrichFolderMembers, JobUpdateChannelTitles, JobUpdateSelfName,
		JobResetAntiFlood, JobBatchNotify, JobDeregisterChannel, JobConnectivityAlarm,
		JobThrottleAlarm, JobBlockBanned, JobUnblockUser:
		return true
	default:
		return false
	}
}

type Job struct {
	ID        int64
	OwnerID   int64
	Kind      JobKind
	Metadata  []byte
	Result    []byte
	CreatedAt time.Time
}

// JobPayload is the union of every job's metadata. Unused fields stay empty.
type JobPayload struct {
	Handles      []string
	Handle       string
	ChannelRef   string
	CandidateIDs []int64
	Folders      []DialogFilter
	Reason       string
}

// FolderMembers is the answer of an enrich_folder_members job.
type FolderMembers struct {
	Title   string
	Members []Entity
}
