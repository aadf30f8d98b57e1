package session

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		sess      Session
		want      Outcome
	}{
		{name: "absent session", requested: "student", sess: Session{}, want: RedirectLogin},
		{name: "student on student", requested: "student", sess: Session{Role: RoleStudent}, want: Allow},
		{name: "teacher on teacher", requested: "teacher", sess: Session{Role: RoleTeacher}, want: Allow},
		{name: "admin on admin", requested: "admin", sess: Session{Role: RoleAdmin}, want: Allow},
		{name: "student on teacher", requested: "teacher", sess: Session{Role: RoleStudent}, want: RedirectLogin},
		{name: "admin on student", requested: "student", sess: Session{Role: RoleAdmin}, want: RedirectLogin},
		{name: "unknown requested role", requested: "parent", sess: Session{Role: RoleTeacher}, want: RedirectLogin},
		{name: "case sensitive", requested: "Teacher", sess: Session{Role: RoleTeacher}, want: RedirectLogin},
		{name: "unknown stored role", requested: "parent", sess: Session{Role: "parent"}, want: RedirectLogin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Check(tt.requested, tt.sess))
		})
	}
}

func TestSelectView(t *testing.T) {
	assert.Equal(t, ViewStudent, SelectView(RoleStudent))
	assert.Equal(t, ViewTeacher, SelectView(RoleTeacher))
	assert.Equal(t, ViewAdmin, SelectView(RoleAdmin))
	assert.Equal(t, ViewNone, SelectView("lol"))
	assert.Equal(t, "Invalid role", SelectView("").String())
}

func TestParseRole(t *testing.T) {
	for _, r := range Roles {
		got, err := ParseRole(string(r))
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
	_, err := ParseRole("ADMIN")
	assert.Equal(t, ErrInvalidRole, err)
}

// storeProperties runs the role-session properties against any Store.
func storeProperties(t *testing.T, newStore func() Store) {
	t.Run("set then check same role", func(t *testing.T) {
		for _, r := range Roles {
			st := newStore()
			require.NoError(t, st.Set(r))
			assert.Equal(t, Allow, Check(string(r), Load(st)))
		}
	})

	t.Run("set then check other role", func(t *testing.T) {
		for _, r1 := range Roles {
			for _, r2 := range Roles {
				if r1 == r2 {
					continue
				}
				st := newStore()
				require.NoError(t, st.Set(r1))
				assert.Equal(t, RedirectLogin, Check(string(r2), Load(st)), "%s -> %s", r1, r2)
			}
		}
	})

	t.Run("absent", func(t *testing.T) {
		st := newStore()
		_, ok := st.Get()
		assert.False(t, ok)
		for _, r := range Roles {
			assert.Equal(t, RedirectLogin, Check(string(r), Load(st)))
		}
	})

	t.Run("clear", func(t *testing.T) {
		st := newStore()
		require.NoError(t, st.Set(RoleAdmin))
		require.NoError(t, st.Clear())
		_, ok := st.Get()
		assert.False(t, ok)
		require.NoError(t, st.Clear())
	})

	t.Run("invalid role", func(t *testing.T) {
		st := newStore()
		require.NoError(t, st.Set(RoleTeacher))
		assert.Equal(t, ErrInvalidRole, st.Set("parent"))
		role, ok := st.Get()
		assert.True(t, ok)
		assert.Equal(t, RoleTeacher, role)
	})

	t.Run("student requests teacher view", func(t *testing.T) {
		st := newStore()
		require.NoError(t, st.Set(RoleStudent))
		role, ok := st.Get()
		require.True(t, ok)
		assert.Equal(t, RoleStudent, role)
		assert.Equal(t, RedirectLogin, Check(string(RoleTeacher), Load(st)))

		// the guard does not clear the session
		role, ok = st.Get()
		assert.True(t, ok)
		assert.Equal(t, RoleStudent, role)
	})
}

func TestMemoryStore(t *testing.T) {
	storeProperties(t, func() Store { return NewMemoryStore() })
}

func TestMemoryStore_concurrent(t *testing.T) {
	st := NewMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = st.Set(Roles[i%len(Roles)])
			_, _ = st.Get()
			if i%7 == 0 {
				_ = st.Clear()
			}
		}(i)
	}
	wg.Wait()

	if role, ok := st.Get(); ok {
		assert.True(t, role.Valid())
	}
}

func TestCodec(t *testing.T) {
	codec := NewCodec("secret", "SmartSchool Connect")

	for _, r := range Roles {
		token, err := codec.Encode(r)
		require.NoError(t, err)
		got, err := codec.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	_, err := codec.Encode("parent")
	assert.Equal(t, ErrInvalidRole, err)

	token, err := codec.Encode(RoleStudent)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "plain role", token: "admin"},
		{name: "tampered", token: token[:strings.LastIndex(token, ".")] + ".c2lnbmF0dXJl"},
		{name: "other key", token: mustEncode(t, NewCodec("other", "SmartSchool Connect"), RoleAdmin)},
		{name: "other issuer", token: mustEncode(t, NewCodec("secret", "lol"), RoleAdmin)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decode(tt.token)
			assert.Error(t, err)
		})
	}
}

func mustEncode(t *testing.T, c *Codec, r Role) string {
	token, err := c.Encode(r)
	require.NoError(t, err)
	return token
}
