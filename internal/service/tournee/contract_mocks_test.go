// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tournee_test
//

// Package tournee_test is a generated GoMock package.
package tournee_test

import (
	context "context"
	reflect "reflect"
	time "time"

	entities "github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/entities"
	tournee "github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/service/tournee"
	gomock "go.uber.org/mock/gomock"
)

// MockGateway is a mock of Gateway interface.
type MockGateway struct {
	ctrl     *gomock.Controller
	recorder *MockGatewayMockRecorder
	isgomock struct{}
}

// MockGatewayMockRecorder is the mock recorder for MockGateway.
type MockGatewayMockRecorder struct {
	mock *MockGateway
}

// NewMockGateway creates a new mock instance.
func NewMockGateway(ctrl *gomock.Controller) *MockGateway {
	mock := &MockGateway{ctrl: ctrl}
	mock.recorder = &MockGatewayMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockGateway) EXPECT() *MockGatewayMockRecorder {
	return m.recorder
}

// CreateSession mocks base method.
func (m *MockGateway) CreateSession(ctx context.Context, creds entities.Credentials) (*entities.DeliverySession, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateSession", ctx, creds)
	ret0, _ := ret[0].(*entities.DeliverySession)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateSession indicates an expected call of CreateSession.
func (mr *MockGatewayMockRecorder) CreateSession(ctx, creds any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateSession", reflect.TypeOf((*MockGateway)(nil).CreateSession), ctx, creds)
}

// FetchPackages mocks base method.
func (m *MockGateway) FetchPackages(ctx context.Context, creds entities.Credentials) (*entities.DeliverySession, int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FetchPackages", ctx, creds)
	ret0, _ := ret[0].(*entities.DeliverySession)
	ret1, _ := ret[1].(int)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// FetchPackages indicates an expected call of FetchPackages.
func (mr *MockGatewayMockRecorder) FetchPackages(ctx, creds any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FetchPackages", reflect.TypeOf((*MockGateway)(nil).FetchPackages), ctx, creds)
}

// Scan mocks base method.
func (m *MockGateway) Scan(ctx context.Context, sessionID, tracking string) (*entities.RemoteScan, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Scan", ctx, sessionID, tracking)
	ret0, _ := ret[0].(*entities.RemoteScan)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Scan indicates an expected call of Scan.
func (mr *MockGatewayMockRecorder) Scan(ctx, sessionID, tracking any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Scan", reflect.TypeOf((*MockGateway)(nil).Scan), ctx, sessionID, tracking)
}

// MockSyncClient is a mock of SyncClient interface.
type MockSyncClient struct {
	ctrl     *gomock.Controller
	recorder *MockSyncClientMockRecorder
	isgomock struct{}
}

// MockSyncClientMockRecorder is the mock recorder for MockSyncClient.
type MockSyncClientMockRecorder struct {
	mock *MockSyncClient
}

// NewMockSyncClient creates a new mock instance.
func NewMockSyncClient(ctrl *gomock.Controller) *MockSyncClient {
	mock := &MockSyncClient{ctrl: ctrl}
	mock.recorder = &MockSyncClientMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSyncClient) EXPECT() *MockSyncClientMockRecorder {
	return m.recorder
}

// Flush mocks base method.
func (m *MockSyncClient) Flush(ctx context.Context, sessionID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Flush", ctx, sessionID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Flush indicates an expected call of Flush.
func (mr *MockSyncClientMockRecorder) Flush(ctx, sessionID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Flush", reflect.TypeOf((*MockSyncClient)(nil).Flush), ctx, sessionID)
}

// LastActivity mocks base method.
func (m *MockSyncClient) LastActivity() time.Time {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LastActivity")
	ret0, _ := ret[0].(time.Time)
	return ret0
}

// LastActivity indicates an expected call of LastActivity.
func (mr *MockSyncClientMockRecorder) LastActivity() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LastActivity", reflect.TypeOf((*MockSyncClient)(nil).LastActivity))
}

// NotifyLocalMutation mocks base method.
func (m *MockSyncClient) NotifyLocalMutation() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "NotifyLocalMutation")
}

// NotifyLocalMutation indicates an expected call of NotifyLocalMutation.
func (mr *MockSyncClientMockRecorder) NotifyLocalMutation() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NotifyLocalMutation", reflect.TypeOf((*MockSyncClient)(nil).NotifyLocalMutation))
}

// Reset mocks base method.
func (m *MockSyncClient) Reset(lastSync int64) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Reset", lastSync)
}

// Reset indicates an expected call of Reset.
func (mr *MockSyncClientMockRecorder) Reset(lastSync any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reset", reflect.TypeOf((*MockSyncClient)(nil).Reset), lastSync)
}

// State mocks base method.
func (m *MockSyncClient) State() entities.SyncState {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "State")
	ret0, _ := ret[0].(entities.SyncState)
	return ret0
}

// State indicates an expected call of State.
func (mr *MockSyncClientMockRecorder) State() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "State", reflect.TypeOf((*MockSyncClient)(nil).State))
}

// MockCache is a mock of Cache interface.
type MockCache struct {
	ctrl     *gomock.Controller
	recorder *MockCacheMockRecorder
	isgomock struct{}
}

// MockCacheMockRecorder is the mock recorder for MockCache.
type MockCacheMockRecorder struct {
	mock *MockCache
}

// NewMockCache creates a new mock instance.
func NewMockCache(ctrl *gomock.Controller) *MockCache {
	mock := &MockCache{ctrl: ctrl}
	mock.recorder = &MockCacheMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCache) EXPECT() *MockCacheMockRecorder {
	return m.recorder
}

// Invalidate mocks base method.
func (m *MockCache) Invalidate(ctx context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Invalidate", ctx)
	ret0, _ := ret[0].(error)
	return ret0
}

// Invalidate indicates an expected call of Invalidate.
func (mr *MockCacheMockRecorder) Invalidate(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Invalidate", reflect.TypeOf((*MockCache)(nil).Invalidate), ctx)
}

// LoadPackages mocks base method.
func (m *MockCache) LoadPackages(ctx context.Context) (*entities.PackagesCache, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LoadPackages", ctx)
	ret0, _ := ret[0].(*entities.PackagesCache)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LoadPackages indicates an expected call of LoadPackages.
func (mr *MockCacheMockRecorder) LoadPackages(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LoadPackages", reflect.TypeOf((*MockCache)(nil).LoadPackages), ctx)
}

// LoadQueue mocks base method.
func (m *MockCache) LoadQueue(ctx context.Context) (*entities.PendingChangesQueue, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LoadQueue", ctx)
	ret0, _ := ret[0].(*entities.PendingChangesQueue)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LoadQueue indicates an expected call of LoadQueue.
func (mr *MockCacheMockRecorder) LoadQueue(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LoadQueue", reflect.TypeOf((*MockCache)(nil).LoadQueue), ctx)
}

// LoadSession mocks base method.
func (m *MockCache) LoadSession(ctx context.Context) (*entities.DeliverySession, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LoadSession", ctx)
	ret0, _ := ret[0].(*entities.DeliverySession)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LoadSession indicates an expected call of LoadSession.
func (mr *MockCacheMockRecorder) LoadSession(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LoadSession", reflect.TypeOf((*MockCache)(nil).LoadSession), ctx)
}

// SaveState mocks base method.
func (m *MockCache) SaveState(ctx context.Context, session *entities.DeliverySession, queue entities.PendingChangesQueue) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SaveState", ctx, session, queue)
	ret0, _ := ret[0].(error)
	return ret0
}

// SaveState indicates an expected call of SaveState.
func (mr *MockCacheMockRecorder) SaveState(ctx, session, queue any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SaveState", reflect.TypeOf((*MockCache)(nil).SaveState), ctx, session, queue)
}

// UpdatePackages mocks base method.
func (m *MockCache) UpdatePackages(ctx context.Context, session *entities.DeliverySession, optimization *entities.OptimizationData) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdatePackages", ctx, session, optimization)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdatePackages indicates an expected call of UpdatePackages.
func (mr *MockCacheMockRecorder) UpdatePackages(ctx, session, optimization any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdatePackages", reflect.TypeOf((*MockCache)(nil).UpdatePackages), ctx, session, optimization)
}

// MockCacheFactory is a mock of CacheFactory interface.
type MockCacheFactory struct {
	ctrl     *gomock.Controller
	recorder *MockCacheFactoryMockRecorder
	isgomock struct{}
}

// MockCacheFactoryMockRecorder is the mock recorder for MockCacheFactory.
type MockCacheFactoryMockRecorder struct {
	mock *MockCacheFactory
}

// NewMockCacheFactory creates a new mock instance.
func NewMockCacheFactory(ctrl *gomock.Controller) *MockCacheFactory {
	mock := &MockCacheFactory{ctrl: ctrl}
	mock.recorder = &MockCacheFactoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCacheFactory) EXPECT() *MockCacheFactoryMockRecorder {
	return m.recorder
}

// ForNamespace mocks base method.
func (m *MockCacheFactory) ForNamespace(namespace string) (tournee.Cache, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ForNamespace", namespace)
	ret0, _ := ret[0].(tournee.Cache)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ForNamespace indicates an expected call of ForNamespace.
func (mr *MockCacheFactoryMockRecorder) ForNamespace(namespace any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ForNamespace", reflect.TypeOf((*MockCacheFactory)(nil).ForNamespace), namespace)
}

// MockClock is a mock of Clock interface.
type MockClock struct {
	ctrl     *gomock.Controller
	recorder *MockClockMockRecorder
	isgomock struct{}
}

// MockClockMockRecorder is the mock recorder for MockClock.
type MockClockMockRecorder struct {
	mock *MockClock
}

// NewMockClock creates a new mock instance.
func NewMockClock(ctrl *gomock.Controller) *MockClock {
	mock := &MockClock{ctrl: ctrl}
	mock.recorder = &MockClockMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockClock) EXPECT() *MockClockMockRecorder {
	return m.recorder
}

// Now mocks base method.
func (m *MockClock) Now() time.Time {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Now")
	ret0, _ := ret[0].(time.Time)
	return ret0
}

// Now indicates an expected call of Now.
func (mr *MockClockMockRecorder) Now() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Now", reflect.TypeOf((*MockClock)(nil).Now))
}
