package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strconv"
	"strings"

	"github.com/samber/lo"

	customerrors "github.com/matthew11k/outreach/internal/domain/errors"
	"github.com/matthew11k/outreach/internal/domain/models"
	"github.com/matthew11k/outreach/internal/engine/cache"
	"github.com/matthew11k/outreach/internal/engine/repository"
)

const helpText = `Доступные команды:
/work on|off - включить или остановить отправку
/ban @user ... - заблокировать пользователей
/unban @user ... - разблокировать пользователей
/bans - список заблокированных
/block - заблокировать всех забаненных в мессенджере
/keyword слово, фраза ... - добавить триггерные слова
/unkeyword слово ... - удалить триггерные слова
/keywords - список триггерных слов
/ignore слово ... - добавить игнорируемые слова
/unignore слово ... - удалить игнорируемые слова
/ignores - список игнорируемых слов
/chat ссылка ... - добавить каналы для отслеживания
/unchat ссылка ... - удалить каналы
/chats - список отслеживаемых каналов
/answer - добавить ответы, по одному на строку
/unanswer - удалить ответы, по одному на строку
/answers - список ответов
/rate N - сообщений в минуту
/antiflood on|off [размер] - режим антифлуда
/ack @user ... - вернуть пакет антифлуда в очередь
/folders - запросить список папок
/members ID - запросить участников папок из задачи ID
/job ID - результат задачи
/titles - обновить названия каналов`

// CommandService executes control bot commands. It only writes to the store
// and the cache; platform side effects are queued as jobs for the engine.
type CommandService struct {
	repos         *repository.Repositories
	settingsCache cache.Store
	rootCache     cache.Store
	ownerID       int64
	botID         int64
	logger        *slog.Logger
}

func NewCommandService(
	repos *repository.Repositories,
	settingsCache cache.Store,
	rootCache cache.Store,
	ownerID int64,
	botID int64,
	logger *slog.Logger,
) *CommandService {
	return &CommandService{
		repos:         repos,
		settingsCache: settingsCache,
		rootCache:     rootCache,
		ownerID:       ownerID,
		botID:         botID,
		logger:        logger,
	}
}

//nolint:gocyclo // одна ветка на команду
func (s *CommandService) ProcessCommand(ctx context.Context, command *models.Command) (string, error) {
	switch command.Type {
	case models.CommandStart, models.CommandHelp:
		return helpText, nil
	case models.CommandWork:
		return s.handleWork(ctx, command.Args)
	case models.CommandBan:
		return s.handleBan(ctx, command.Args)
	case models.CommandUnban:
		return s.handleUnban(ctx, command.Args)
	case models.CommandBans:
		return s.handleBans(ctx)
	case models.CommandBlock:
		return s.enqueue(ctx, models.JobBlockBanned, models.JobPayload{}, "Блокировка забаненных поставлена в очередь")
	case models.CommandKeyword:
		return s.addRules(ctx, models.RuleKeyword, splitWords(command.Args), "Триггерные слова добавлены")
	case models.CommandUnkeyword:
		return s.removeRules(ctx, models.RuleKeyword, splitWords(command.Args), "Триггерные слова удалены")
	case models.CommandKeywords:
		return s.listRules(ctx, models.RuleKeyword, ", ", "Нет триггерных слов")
	case models.CommandIgnore:
		return s.addRules(ctx, models.RuleExclude, splitWords(command.Args), "Игнорируемые слова добавлены")
	case models.CommandUnignore:
		return s.removeRules(ctx, models.RuleExclude, splitWords(command.Args), "Игнорируемые слова удалены")
	case models.CommandIgnores:
		return s.listRules(ctx, models.RuleExclude, ", ", "Нет игнорируемых слов")
	case models.CommandAnswer:
		return s.addRules(ctx, models.RuleAnswer, splitLines(command.Args), "Ответы добавлены")
	case models.CommandUnanswer:
		return s.removeRules(ctx, models.RuleAnswer, splitLines(command.Args), "Ответы удалены")
	case models.CommandAnswers:
		return s.listRules(ctx, models.RuleAnswer, "\n\n", "Нет ответов")
	case models.CommandChat:
		return s.handleChat(ctx, command.Args)
	case models.CommandUnchat:
		return s.handleUnchat(ctx, command.Args)
	case models.CommandChats:
		return s.handleChats(ctx)
	case models.CommandRate:
		return s.handleRate(ctx, command.Args)
	case models.CommandAntiFlood:
		return s.handleAntiFlood(ctx, command.Args)
	case models.CommandAck:
		return s.enqueue(ctx, models.JobResetAntiFlood, models.JobPayload{Handles: normalizeHandles(command.Args)},
			"Сброс антифлуда поставлен в очередь")
	case models.CommandFolders:
		return s.enqueue(ctx, models.JobListFolders, models.JobPayload{}, "Запрос папок поставлен в очередь")
	case models.CommandMembers:
		return s.handleMembers(ctx, command.Args)
	case models.CommandJob:
		return s.handleJob(ctx, command.Args)
	case models.CommandTitles:
		return s.enqueue(ctx, models.JobUpdateChannelTitles, models.JobPayload{}, "Обновление названий поставлено в очередь")
	case models.CommandUnknown:
		return "Неизвестная команда. Введите /help для просмотра доступных команд.",
			&customerrors.ErrUnknownCommand{Command: command.Text}
	default:
		return "Неизвестная команда. Введите /help для просмотра доступных команд.",
			&customerrors.ErrUnknownCommand{Command: string(command.Type)}
	}
}

func (s *CommandService) handleWork(ctx context.Context, args string) (string, error) {
	var started bool

	switch strings.ToLower(strings.TrimSpace(args)) {
	case "on":
		started = true
	case "off":
		started = false
	case "":
		bot, err := s.repos.Bots.FindByID(ctx, s.botID)
		if err != nil {
			return "", err
		}

		if bot.IsStarted {
			return "Отправка включена", nil
		}

		return "Отправка остановлена", nil
	default:
		return "Использование: /work on|off", nil
	}

	if err := s.repos.Bots.SetStarted(ctx, s.botID, started); err != nil {
		return "", err
	}

	if err := s.rootCache.Del(ctx, cache.KeyWorkFlag(s.botID)); err != nil {
		s.logger.Warn("Не удалось сбросить флаг работы в кэше", "botID", s.botID, "error", err)
	}

	s.logger.Info("Флаг работы изменен", "botID", s.botID, "started", started)

	if started {
		return "Отправка включена", nil
	}

	return "Отправка остановлена", nil
}

func (s *CommandService) handleBan(ctx context.Context, args string) (string, error) {
	handles := normalizeHandles(args)
	if len(handles) == 0 {
		return "Использование: /ban @user ...", nil
	}

	added, err := s.repos.Bans.Add(ctx, s.ownerID, handles)
	if err != nil {
		return "", err
	}

	s.invalidate(ctx, cache.KeyBanned)

	return fmt.Sprintf("Заблокировано пользователей: %d", added), nil
}

func (s *CommandService) handleUnban(ctx context.Context, args string) (string, error) {
	handles := normalizeHandles(args)
	if len(handles) == 0 {
		return "Использование: /unban @user ...", nil
	}

	removed, err := s.repos.Bans.Remove(ctx, s.ownerID, handles)
	if err != nil {
		return "", err
	}

	s.invalidate(ctx, cache.KeyBanned)

	for _, handle := range handles {
		if _, err := s.repos.Jobs.Enqueue(ctx, &models.Job{
			OwnerID:  s.ownerID,
			Kind:     models.JobUnblockUser,
			Metadata: models.EncodeJobPayload(models.JobPayload{Handle: handle}),
		}); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("Разблокировано пользователей: %d", removed), nil
}

func (s *CommandService) handleBans(ctx context.Context) (string, error) {
	bans, err := s.repos.Bans.List(ctx, s.ownerID)
	if err != nil {
		return "", err
	}

	if len(bans) == 0 {
		return "Нет заблокированных пользователей", nil
	}

	lines := lo.Map(bans, func(b models.BannedHandle, _ int) string {
		if b.Blocked {
			return html.EscapeString(b.Handle) + " (заблокирован)"
		}

		return html.EscapeString(b.Handle)
	})

	return strings.Join(lines, "\n"), nil
}

func (s *CommandService) addRules(ctx context.Context, kind models.RuleKind, values []string, done string) (string, error) {
	if len(values) == 0 {
		return "Не указано ни одного значения", nil
	}

	added, err := s.repos.Rules.Add(ctx, kind, s.ownerID, values)
	if err != nil {
		return "", err
	}

	s.invalidate(ctx, ruleCacheKey(kind))

	return fmt.Sprintf("%s: %d", done, added), nil
}

func (s *CommandService) removeRules(ctx context.Context, kind models.RuleKind, values []string, done string) (string, error) {
	if len(values) == 0 {
		return "Не указано ни одного значения", nil
	}

	removed, err := s.repos.Rules.Remove(ctx, kind, s.ownerID, values)
	if err != nil {
		return "", err
	}

	s.invalidate(ctx, ruleCacheKey(kind))

	return fmt.Sprintf("%s: %d", done, removed), nil
}

func (s *CommandService) listRules(ctx context.Context, kind models.RuleKind, sep, empty string) (string, error) {
	values, err := s.repos.Rules.List(ctx, kind, s.ownerID)
	if err != nil {
		return "", err
	}

	if len(values) == 0 {
		return empty, nil
	}

	return strings.Join(lo.Map(values, func(v string, _ int) string { return html.EscapeString(v) }), sep), nil
}

func (s *CommandService) handleChat(ctx context.Context, args string) (string, error) {
	refs := lo.Map(splitRefs(args), func(ref string, _ int) string { return normalizeChannelRef(ref) })
	if len(refs) == 0 {
		return "Использование: /chat @channel ...", nil
	}

	added := 0

	for _, ref := range refs {
		ok, err := s.repos.Channels.Add(ctx, s.ownerID, ref)
		if err != nil {
			return "", err
		}

		if ok {
			added++
		}
	}

	if added > 0 {
		if _, err := s.repos.Jobs.Enqueue(ctx, &models.Job{
			OwnerID:  s.ownerID,
			Kind:     models.JobUpdateChannelTitles,
			Metadata: models.EncodeJobPayload(models.JobPayload{}),
		}); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("Добавлено каналов: %d", added), nil
}

func (s *CommandService) handleUnchat(ctx context.Context, args string) (string, error) {
	refs := lo.Map(splitRefs(args), func(ref string, _ int) string { return normalizeChannelRef(ref) })
	if len(refs) == 0 {
		return "Использование: /unchat @channel ...", nil
	}

	removed := 0

	for _, ref := range refs {
		ok, err := s.repos.Channels.Remove(ctx, s.ownerID, ref)
		if err != nil {
			return "", err
		}

		if ok {
			removed++
		}

		if err := s.settingsCache.Del(ctx, cache.KeyCursor(ref)); err != nil {
			s.logger.Warn("Не удалось удалить курсор канала", "channel", ref, "error", err)
		}
	}

	return fmt.Sprintf("Удалено каналов: %d", removed), nil
}

func (s *CommandService) handleChats(ctx context.Context) (string, error) {
	channels, err := s.repos.Channels.ListByOwner(ctx, s.ownerID)
	if err != nil {
		return "", err
	}

	if len(channels) == 0 {
		return "Нет отслеживаемых каналов", nil
	}

	var sb strings.Builder

	for i, channel := range channels {
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, html.EscapeString(channel.ChannelRef)))

		if channel.Title != nil {
			sb.WriteString(" - " + html.EscapeString(*channel.Title))
		}

		sb.WriteString("\n")
	}

	return sb.String(), nil
}

func (s *CommandService) handleRate(ctx context.Context, args string) (string, error) {
	rate, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil || rate < 1 {
		return "Использование: /rate N, где N - целое число больше нуля", nil
	}

	if err := s.repos.Owners.SetSendRate(ctx, s.ownerID, rate); err != nil {
		return "", err
	}

	s.invalidate(ctx, cache.KeyOwnerConfig)

	return fmt.Sprintf("Лимит отправки: %d сообщений в минуту", rate), nil
}

func (s *CommandService) handleAntiFlood(ctx context.Context, args string) (string, error) {
	fields := strings.Fields(strings.ToLower(args))
	if len(fields) == 0 || (fields[0] != "on" && fields[0] != "off") {
		return "Использование: /antiflood on|off [размер пакета]", nil
	}

	if len(fields) > 1 {
		size, err := strconv.Atoi(fields[1])
		if err != nil || size < 1 {
			return "Размер пакета должен быть целым числом больше нуля", nil
		}

		if err := s.repos.Owners.SetAntiFloodBatchSize(ctx, s.ownerID, size); err != nil {
			return "", err
		}
	}

	enabled := fields[0] == "on"

	if err := s.repos.Owners.SetAntiFloodMode(ctx, s.ownerID, enabled); err != nil {
		return "", err
	}

	s.invalidate(ctx, cache.KeyOwnerConfig)

	if enabled {
		return "Антифлуд включен", nil
	}

	return "Антифлуд выключен", nil
}

func (s *CommandService) handleMembers(ctx context.Context, args string) (string, error) {
	job, reply, err := s.findJob(ctx, args)
	if job == nil {
		return reply, err
	}

	if job.Kind != models.JobListFolders || job.Result == nil {
		return "Задача не является готовым списком папок", nil
	}

	folders, err := models.DecodeFolders(job.Result)
	if err != nil {
		return "", err
	}

	return s.enqueue(ctx, models.JobEnrichFolderMembers, models.JobPayload{Folders: folders}, "Запрос участников поставлен в очередь")
}

func (s *CommandService) handleJob(ctx context.Context, args string) (string, error) {
	job, reply, err := s.findJob(ctx, args)
	if job == nil {
		return reply, err
	}

	if job.Result == nil {
		return fmt.Sprintf("Задача %d еще не выполнена", job.ID), nil
	}

	switch job.Kind {
	case models.JobListFolders:
		folders, err := models.DecodeFolders(job.Result)
		if err != nil {
			return "", err
		}

		return FormatFolders(job.ID, folders), nil
	case models.JobEnrichFolderMembers:
		members, err := models.DecodeFolderMembers(job.Result)
		if err != nil {
			return "", err
		}

		return FormatFolderMembers(members), nil
	default:
		return fmt.Sprintf("Задача %d выполнена", job.ID), nil
	}
}

// findJob returns either the job or the reply to send instead.
func (s *CommandService) findJob(ctx context.Context, args string) (*models.Job, string, error) {
	jobID, err := strconv.ParseInt(strings.TrimSpace(args), 10, 64)
	if err != nil {
		return nil, "Укажите номер задачи", nil
	}

	job, err := s.repos.Jobs.FindByID(ctx, s.ownerID, jobID)
	if err != nil {
		if errors.Is(err, &customerrors.ErrJobNotFound{}) {
			return nil, fmt.Sprintf("Задача %d не найдена", jobID), nil
		}

		return nil, "", err
	}

	return job, "", nil
}

func (s *CommandService) enqueue(ctx context.Context, kind models.JobKind, payload models.JobPayload, done string) (string, error) {
	jobID, err := s.repos.Jobs.Enqueue(ctx, &models.Job{
		OwnerID:  s.ownerID,
		Kind:     kind,
		Metadata: models.EncodeJobPayload(payload),
	})
	if err != nil {
		return "", err
	}

	s.logger.Info("Задача поставлена в очередь", "kind", kind, "jobID", jobID)

	return fmt.Sprintf("%s, задача %d", done, jobID), nil
}

// invalidate drops cached settings so the engine reloads them on its next
// tick. A failed delete only delays the change until the TTL expires.
func (s *CommandService) invalidate(ctx context.Context, keys ...string) {
	if err := s.settingsCache.Del(ctx, keys...); err != nil {
		s.logger.Warn("Не удалось сбросить кэш настроек", "keys", keys, "error", err)
	}
}

func ruleCacheKey(kind models.RuleKind) string {
	if kind == models.RuleAnswer {
		return cache.KeyAnswers
	}

	return cache.KeyRules
}

func normalizeChannelRef(ref string) string {
	ref = strings.TrimSpace(ref)
	if strings.HasPrefix(ref, "@") {
		return strings.ToLower(ref)
	}

	return ref
}

func FormatFolders(jobID int64, folders []models.DialogFilter) string {
	if len(folders) == 0 {
		return "Папок нет"
	}

	var sb strings.Builder

	for _, f := range folders {
		sb.WriteString(fmt.Sprintf("📁 <b>%s</b> (id %d): каналов %d, закреплено %d\n",
			html.EscapeString(f.Title), f.ID, len(f.IncludePeers), len(f.PinnedPeers)))
	}

	sb.WriteString(fmt.Sprintf("\nУчастники: /members %d", jobID))

	return sb.String()
}

func FormatFolderMembers(folders []models.FolderMembers) string {
	if len(folders) == 0 {
		return "Папок нет"
	}

	var sb strings.Builder

	for _, f := range folders {
		sb.WriteString(fmt.Sprintf("📁 <b>%s</b>\n", html.EscapeString(f.Title)))

		for _, m := range f.Members {
			name := strings.TrimSpace(m.FirstName + " " + m.LastName)

			switch {
			case m.Username != "":
				sb.WriteString(fmt.Sprintf("• @%s %s\n", html.EscapeString(m.Username), html.EscapeString(name)))
			case m.Phone != "":
				sb.WriteString(fmt.Sprintf("• %s %s\n", html.EscapeString(m.Phone), html.EscapeString(name)))
			default:
				sb.WriteString(fmt.Sprintf("• id %d %s\n", m.ID, html.EscapeString(name)))
			}
		}
	}

	return sb.String()
}
