package page

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/admin-nexus/internal/client"
	"github.com/admin-nexus/internal/export"

	"golang.org/x/sync/errgroup"
)

// SearchMode 搜索方式
type SearchMode int

const (
	// SearchLocal 在已加载数据上过滤
	SearchLocal SearchMode = iota
	// SearchRemote 防抖后调用服务端搜索，再在结果上应用其余过滤
	SearchRemote
)

const (
	defaultItemsPerPage = 10
	defaultDebounce     = 500 * time.Millisecond
	filterAll           = "all"
)

// Form 表单数据
type Form = client.Patch

// Source 页面绑定的数据源
type Source[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item *T) (*T, error)
	Update(ctx context.Context, id string, patch client.Patch) (*T, error)
	Delete(ctx context.Context, id string) error
}

// Searcher 支持服务端搜索的数据源
type Searcher[T any] interface {
	Search(ctx context.Context, term string) ([]T, error)
}

// FilterFunc 命名过滤器，value 为当前选择
type FilterFunc[T any] func(item T, value string) bool

// Options 页面配置
type Options[T any] struct {
	Resource     string // 复数资源名，用于提示与导出文件名
	Singular     string
	ID           func(T) string
	Matches      func(item T, term string) bool
	Filters      map[string]FilterFunc[T]
	Mode         SearchMode
	Debounce     time.Duration
	ItemsPerPage int
	DateFields   []string
	Defaults     Form
	Columns      []export.Column[T]
	Confirm      func(prompt string) bool
	Notify       func(Toast)
	Now          func() time.Time
}

// Page 可编辑表格的状态机
type Page[T any] struct {
	mu   sync.Mutex
	src  Source[T]
	opts Options[T]

	items       []T
	loading     bool
	loaded      bool
	searchTerm  string
	filters     map[string]string
	currentPage int
	dialogOpen  bool
	editing     *T
	form        Form
	selected    map[string]struct{}

	searchSeq   uint64
	searchTimer *time.Timer
	pending     sync.WaitGroup
}

// New 创建页面
func New[T any](src Source[T], opts Options[T]) *Page[T] {
	if opts.ItemsPerPage <= 0 {
		opts.ItemsPerPage = defaultItemsPerPage
	}
	if opts.Debounce <= 0 {
		opts.Debounce = defaultDebounce
	}
	if opts.Singular == "" {
		opts.Singular = strings.TrimSuffix(opts.Resource, "s")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Page[T]{
		src:         src,
		opts:        opts,
		items:       make([]T, 0),
		filters:     make(map[string]string),
		currentPage: 1,
		selected:    make(map[string]struct{}),
	}
}

func (p *Page[T]) notify(t Toast) {
	if p.opts.Notify != nil {
		p.opts.Notify(t)
	}
}

func (p *Page[T]) fail(kind Kind) {
	p.notify(failureToast(kind, p.opts.Resource, p.opts.Singular))
}

func (p *Page[T]) succeed(kind Kind) {
	p.notify(successToast(kind, p.opts.Resource, p.opts.Singular))
}

// Load 首次加载全量数据，重复调用不再请求
func (p *Page[T]) Load(ctx context.Context) error {
	p.mu.Lock()
	if p.loaded {
		p.mu.Unlock()
		return nil
	}
	p.mu.Unlock()
	return p.Reload(ctx)
}

// Reload 重新加载全量数据
func (p *Page[T]) Reload(ctx context.Context) error {
	p.mu.Lock()
	p.loading = true
	p.mu.Unlock()

	items, err := p.src.List(ctx)

	if items == nil || err != nil {
		items = make([]T, 0)
	}
	p.mu.Lock()
	p.loading = false
	p.loaded = true
	p.items = items
	p.clampPage()
	p.mu.Unlock()
	if err != nil {
		p.fail(KindLoad)
		return err
	}
	return nil
}

// Loading 是否加载中
func (p *Page[T]) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// Items 当前已加载数据的副本
func (p *Page[T]) Items() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]T(nil), p.items...)
}

// SearchTerm 当前搜索词
func (p *Page[T]) SearchTerm() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.searchTerm
}

// SetSearch 更新搜索词；远程模式下防抖后发起搜索
func (p *Page[T]) SetSearch(ctx context.Context, term string) {
	p.mu.Lock()
	p.searchTerm = term
	p.currentPage = 1
	if p.opts.Mode != SearchRemote {
		p.mu.Unlock()
		return
	}
	if p.searchTimer != nil && p.searchTimer.Stop() {
		p.pending.Done()
	}
	p.pending.Add(1)
	p.searchTimer = time.AfterFunc(p.opts.Debounce, func() {
		defer p.pending.Done()
		_ = p.dispatchSearch(ctx, term)
	})
	p.mu.Unlock()
}

// SearchNow 立即发起远程搜索（跳过防抖）
func (p *Page[T]) SearchNow(ctx context.Context) error {
	p.mu.Lock()
	term := p.searchTerm
	if p.searchTimer != nil && p.searchTimer.Stop() {
		p.pending.Done()
	}
	p.searchTimer = nil
	p.mu.Unlock()
	return p.dispatchSearch(ctx, term)
}

// WaitIdle 等待防抖中与进行中的搜索结束
func (p *Page[T]) WaitIdle() {
	p.pending.Wait()
}

// dispatchSearch 以序号丢弃过期响应，只采用最后发出的请求结果
func (p *Page[T]) dispatchSearch(ctx context.Context, term string) error {
	p.mu.Lock()
	p.searchSeq++
	seq := p.searchSeq
	p.loading = true
	p.mu.Unlock()

	var (
		items []T
		err   error
	)
	searcher, ok := p.src.(Searcher[T])
	if strings.TrimSpace(term) == "" || !ok {
		items, err = p.src.List(ctx)
	} else {
		items, err = searcher.Search(ctx, term)
	}

	p.mu.Lock()
	if seq != p.searchSeq {
		p.mu.Unlock()
		return nil
	}
	p.loading = false
	if err == nil {
		if items == nil {
			items = make([]T, 0)
		}
		p.items = items
		p.clampPage()
	}
	p.mu.Unlock()
	if err != nil {
		p.fail(KindSearch)
		return err
	}
	return nil
}

// SetFilter 设置命名过滤器，"" 或 "all" 表示不过滤
func (p *Page[T]) SetFilter(name, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.filters[name] = value
	p.currentPage = 1
}

// Filtered 搜索与全部过滤器组合后的集合（未分页）
func (p *Page[T]) Filtered() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filteredLocked()
}

func (p *Page[T]) filteredLocked() []T {
	out := make([]T, 0, len(p.items))
	for _, item := range p.items {
		if p.matchesLocked(item) {
			out = append(out, item)
		}
	}
	return out
}

func (p *Page[T]) matchesLocked(item T) bool {
	term := strings.TrimSpace(p.searchTerm)
	if p.opts.Mode == SearchLocal && term != "" && p.opts.Matches != nil && !p.opts.Matches(item, term) {
		return false
	}
	for name, value := range p.filters {
		if value == "" || value == filterAll {
			continue
		}
		fn, ok := p.opts.Filters[name]
		if ok && !fn(item, value) {
			return false
		}
	}
	return true
}

// PageCount ceil(len(filtered)/itemsPerPage)
func (p *Page[T]) PageCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pageCountLocked()
}

func (p *Page[T]) pageCountLocked() int {
	n := len(p.filteredLocked())
	return (n + p.opts.ItemsPerPage - 1) / p.opts.ItemsPerPage
}

// CurrentPage 当前页码（从 1 开始）
func (p *Page[T]) CurrentPage() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.currentPage
}

// SetPage 跳转页码，超界时夹到合法范围
func (p *Page[T]) SetPage(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.currentPage = n
	p.clampPage()
}

func (p *Page[T]) clampPage() {
	last := p.pageCountLocked()
	if last < 1 {
		last = 1
	}
	if p.currentPage > last {
		p.currentPage = last
	}
	if p.currentPage < 1 {
		p.currentPage = 1
	}
}

// Visible 当前页数据 filtered[(p-1)*n : p*n]
func (p *Page[T]) Visible() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	filtered := p.filteredLocked()
	start := (p.currentPage - 1) * p.opts.ItemsPerPage
	if start >= len(filtered) {
		return make([]T, 0)
	}
	end := start + p.opts.ItemsPerPage
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// OpenCreate 打开新建对话框，表单为默认值
func (p *Page[T]) OpenCreate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.form = cloneForm(p.opts.Defaults)
	p.editing = nil
	p.dialogOpen = true
}

// OpenEdit 打开编辑对话框，表单按所选行预填，日期字段截断为 YYYY-MM-DD
func (p *Page[T]) OpenEdit(item T) error {
	form, err := toForm(item)
	if err != nil {
		return err
	}
	for _, field := range p.opts.DateFields {
		if raw, ok := form[field].(string); ok && len(raw) >= len("2006-01-02") {
			form[field] = raw[:len("2006-01-02")]
		}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.form = form
	p.editing = &item
	p.dialogOpen = true
	return nil
}

// CloseDialog 关闭对话框
func (p *Page[T]) CloseDialog() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dialogOpen = false
	p.editing = nil
	p.form = nil
}

// DialogOpen 对话框是否打开
func (p *Page[T]) DialogOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dialogOpen
}

// Editing 正在编辑的行，新建时为 nil
func (p *Page[T]) Editing() *T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.editing
}

// Form 当前表单副本
func (p *Page[T]) Form() Form {
	p.mu.Lock()
	defer p.mu.Unlock()
	return cloneForm(p.form)
}

// SetField 修改表单字段
func (p *Page[T]) SetField(name string, value interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.form == nil {
		p.form = make(Form)
	}
	p.form[name] = value
}

// Submit 提交对话框：新建时插入到列表头部，编辑时按 ID 替换
func (p *Page[T]) Submit(ctx context.Context) (*T, error) {
	p.mu.Lock()
	if !p.dialogOpen {
		p.mu.Unlock()
		return nil, errors.New("dialog is not open")
	}
	form := cloneForm(p.form)
	editing := p.editing
	p.mu.Unlock()

	if editing != nil {
		return p.submitUpdate(ctx, p.opts.ID(*editing), form)
	}
	return p.submitCreate(ctx, form)
}

func (p *Page[T]) submitCreate(ctx context.Context, form Form) (*T, error) {
	var entity T
	raw, err := json.Marshal(form)
	if err == nil {
		err = json.Unmarshal(raw, &entity)
	}
	if err != nil {
		p.fail(KindCreate)
		return nil, fmt.Errorf("decode form: %w", err)
	}
	created, err := p.src.Create(ctx, &entity)
	if err != nil {
		p.fail(KindCreate)
		return nil, err
	}
	p.mu.Lock()
	p.items = append([]T{*created}, p.items...)
	p.dialogOpen = false
	p.editing = nil
	p.form = nil
	p.mu.Unlock()
	p.succeed(KindCreate)
	return created, nil
}

func (p *Page[T]) submitUpdate(ctx context.Context, id string, form Form) (*T, error) {
	for _, key := range []string{"id", "created_at", "updated_at"} {
		delete(form, key)
	}
	updated, err := p.src.Update(ctx, id, form)
	if err != nil {
		p.fail(KindUpdate)
		return nil, err
	}
	p.mu.Lock()
	for i := range p.items {
		if p.opts.ID(p.items[i]) == id {
			p.items[i] = *updated
		}
	}
	p.dialogOpen = false
	p.editing = nil
	p.form = nil
	p.mu.Unlock()
	p.succeed(KindUpdate)
	return updated, nil
}

// Delete 确认后删除，返回是否实际删除
func (p *Page[T]) Delete(ctx context.Context, id string) (bool, error) {
	if p.opts.Confirm == nil || !p.opts.Confirm(fmt.Sprintf("Delete this %s?", p.opts.Singular)) {
		return false, nil
	}
	if err := p.src.Delete(ctx, id); err != nil {
		p.fail(KindDelete)
		return false, err
	}
	p.mu.Lock()
	p.removeLocked(map[string]struct{}{id: {}})
	delete(p.selected, id)
	p.clampPage()
	p.mu.Unlock()
	p.succeed(KindDelete)
	return true, nil
}

func (p *Page[T]) removeLocked(ids map[string]struct{}) {
	kept := p.items[:0]
	for _, item := range p.items {
		if _, gone := ids[p.opts.ID(item)]; !gone {
			kept = append(kept, item)
		}
	}
	p.items = kept
}

// ToggleSelect 切换选择
func (p *Page[T]) ToggleSelect(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.selected[id]; ok {
		delete(p.selected, id)
		return
	}
	p.selected[id] = struct{}{}
}

// Selected 已选 ID（有序）
func (p *Page[T]) Selected() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	ids := make([]string, 0, len(p.selected))
	for id := range p.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// BulkDelete 并发删除所选项：所选 ID 全部移出选择，成功项移出列表，任一失败只提示一次
func (p *Page[T]) BulkDelete(ctx context.Context) (int, error) {
	ids := p.Selected()
	if len(ids) == 0 {
		return 0, nil
	}
	if p.opts.Confirm == nil || !p.opts.Confirm(fmt.Sprintf("Delete %d %s?", len(ids), p.opts.Resource)) {
		return 0, nil
	}

	results := make([]error, len(ids))
	var g errgroup.Group
	for i, id := range ids {
		g.Go(func() error {
			results[i] = p.src.Delete(ctx, id)
			return nil
		})
	}
	_ = g.Wait()

	deleted := make(map[string]struct{}, len(ids))
	var errs []error
	for i, id := range ids {
		if results[i] != nil {
			errs = append(errs, fmt.Errorf("delete %s: %w", id, results[i]))
			continue
		}
		deleted[id] = struct{}{}
	}

	p.mu.Lock()
	p.removeLocked(deleted)
	for _, id := range ids {
		delete(p.selected, id)
	}
	p.clampPage()
	p.mu.Unlock()

	if len(errs) > 0 {
		p.fail(KindBulk)
		return len(deleted), errors.Join(errs...)
	}
	p.succeed(KindBulk)
	return len(deleted), nil
}

func cloneForm(src Form) Form {
	out := make(Form, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func toForm(item interface{}) (Form, error) {
	raw, err := json.Marshal(item)
	if err != nil {
		return nil, err
	}
	form := make(Form)
	if err := json.Unmarshal(raw, &form); err != nil {
		return nil, err
	}
	return form, nil
}
