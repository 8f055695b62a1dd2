package sf

import "fmt"

// Result is the flat return-code type used by every public operation in
// this module in place of a boxed error. It is laid out as a flat i32
// taxonomy with stable numeric buckets per subsystem, ported from the
// canonical "sf" result tree (the parallel "sfa" tree in the original
// source is discarded, per the framework's own open question about which
// of the two to keep).
//
// Result implements error so it can still be threaded through
// errors.Is/fmt.Errorf at call sites that want that (task
// implementations, examples, tests), but core operations return it by
// value on the hot path rather than allocating.
type Result int32

// Error implements the error interface.
func (r Result) Error() string {
	if s, ok := resultStrings[r]; ok {
		return s
	}
	return fmt.Sprintf("sf: result %d", int32(r))
}

// Ok reports whether the result is SUCCESS.
func (r Result) Ok() bool { return r == SUCCESS }

const (
	// SUCCESS indicates a function succeeded.
	SUCCESS Result = 0

	// E_ASSERT is returned by a failing safe assert.
	E_ASSERT Result = 1

	// Region
	E_RGN_SIZE Result = 32

	// StateVector
	E_SV_UNINIT    Result = 64
	E_SV_REINIT    Result = 65
	E_SV_EMPTY     Result = 66
	E_SV_TYPE      Result = 67
	E_SV_NULL      Result = 68
	E_SV_KEY       Result = 69
	E_SV_LAYOUT    Result = 70
	E_SV_ELEM_DUPE Result = 71
	E_SV_RGN_DUPE  Result = 72

	// Task
	E_TSK_UNINIT Result = 128
	E_TSK_REINIT Result = 129
	E_TSK_MODE   Result = 130

	// StateMachine
	E_SM_UNINIT  Result = 160
	E_SM_REINIT  Result = 161
	E_SM_STATE   Result = 162
	E_SM_NULL    Result = 163
	E_SM_TIME    Result = 164
	E_SM_TRANS   Result = 165
	E_SM_TR_EXIT Result = 166
	E_SM_EMPTY   Result = 167

	// RegionTxTask
	E_RTX_SIZE Result = 192

	// RegionRxTask
	E_RRX_NULL Result = 224

	// Executor
	E_EXE_NULL Result = 320
	E_EXE_OVFL Result = 321

	// RealTimeExecutor
	E_MSE_CORE Result = 352
	E_MSE_CNT  Result = 353
	E_MSE_TSKS Result = 354

	// PSL: Socket
	E_SOK_UNINIT   Result = 1024
	E_SOK_REINIT   Result = 1025
	E_SOK_PROTO    Result = 1026
	E_SOK_OPEN     Result = 1027
	E_SOK_BIND     Result = 1028
	E_SOK_SEND     Result = 1029
	E_SOK_RECV     Result = 1030
	E_SOK_SEL      Result = 1031
	E_SOK_CLOSE    Result = 1032
	E_SOK_NULL     Result = 1033
	E_SOK_SEL_NONE Result = 1034

	// PSL: Thread
	E_THR_UNINIT    Result = 1056
	E_THR_REINIT    Result = 1057
	E_THR_POL       Result = 1058
	E_THR_PRI       Result = 1059
	E_THR_CREATE    Result = 1060
	E_THR_AFF       Result = 1061
	E_THR_EXIST     Result = 1062
	E_THR_AWAIT     Result = 1063
	E_THR_RANGE     Result = 1064
	E_THR_NULL      Result = 1065
	E_THR_INIT_ATTR Result = 1066
	E_THR_DTRY_ATTR Result = 1067
	E_THR_INH_PRI   Result = 1068

	// PSL: Spinlock
	E_SLK_UNINIT Result = 1088
	E_SLK_REINIT Result = 1089
	E_SLK_CREATE Result = 1090
	E_SLK_ACQ    Result = 1091
	E_SLK_REL    Result = 1092
)

var resultStrings = map[Result]string{
	SUCCESS:         "success",
	E_ASSERT:        "assertion failure",
	E_RGN_SIZE:      "region: buffer size does not match region size",
	E_SV_UNINIT:     "state vector: uninitialized",
	E_SV_REINIT:     "state vector: already initialized",
	E_SV_EMPTY:      "state vector: empty",
	E_SV_TYPE:       "state vector: element type mismatch",
	E_SV_NULL:       "state vector: null config",
	E_SV_KEY:        "state vector: unknown name",
	E_SV_LAYOUT:     "state vector: region layout invalid",
	E_SV_ELEM_DUPE:  "state vector: duplicate element name",
	E_SV_RGN_DUPE:   "state vector: duplicate region name",
	E_TSK_UNINIT:    "task: uninitialized",
	E_TSK_REINIT:    "task: already initialized",
	E_TSK_MODE:      "task: invalid mode",
	E_SM_UNINIT:     "state machine: uninitialized",
	E_SM_REINIT:     "state machine: already initialized",
	E_SM_STATE:      "state machine: initial state not found",
	E_SM_NULL:       "state machine: null config",
	E_SM_TIME:       "state machine: non-monotonic or reserved global time",
	E_SM_TRANS:      "state machine: transition to unknown state",
	E_SM_TR_EXIT:    "state machine: transition present in exit block",
	E_SM_EMPTY:      "state machine: no states configured",
	E_RTX_SIZE:      "region tx task: region size mismatch",
	E_RRX_NULL:      "region rx task: null socket or region",
	E_EXE_NULL:      "executor: null config",
	E_EXE_OVFL:      "executor: clock within one year of overflow",
	E_MSE_CORE:      "real-time executor: duplicate core id",
	E_MSE_CNT:       "real-time executor: no cores configured",
	E_MSE_TSKS:      "real-time executor: core with no tasks",
	E_SOK_UNINIT:    "socket: uninitialized",
	E_SOK_REINIT:    "socket: already initialized",
	E_SOK_PROTO:     "socket: protocol error",
	E_SOK_OPEN:      "socket: open failed",
	E_SOK_BIND:      "socket: bind failed",
	E_SOK_SEND:      "socket: send failed",
	E_SOK_RECV:      "socket: recv failed",
	E_SOK_SEL:       "socket: select failed",
	E_SOK_CLOSE:     "socket: close failed",
	E_SOK_NULL:      "socket: null argument",
	E_SOK_SEL_NONE:  "socket: select timed out with nothing ready",
	E_THR_UNINIT:    "thread: uninitialized",
	E_THR_REINIT:    "thread: already initialized",
	E_THR_POL:       "thread: invalid policy",
	E_THR_PRI:       "thread: invalid priority",
	E_THR_CREATE:    "thread: create failed",
	E_THR_AFF:       "thread: set affinity failed",
	E_THR_EXIST:     "thread: already exists",
	E_THR_AWAIT:     "thread: await failed",
	E_THR_RANGE:     "thread: priority out of range",
	E_THR_NULL:      "thread: null argument",
	E_THR_INIT_ATTR: "thread: failed to init attributes",
	E_THR_DTRY_ATTR: "thread: failed to destroy attributes",
	E_THR_INH_PRI:   "thread: failed to set inherit-priority",
	E_SLK_UNINIT:    "spinlock: uninitialized",
	E_SLK_REINIT:    "spinlock: already initialized",
	E_SLK_CREATE:    "spinlock: create failed",
	E_SLK_ACQ:       "spinlock: acquire failed",
	E_SLK_REL:       "spinlock: release failed",
}
