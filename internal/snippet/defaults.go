package snippet

// Defaults returns the built-in collection used when no snippet source
// yields anything.
func Defaults() []Snippet {
	return Clone(defaultSnippets)
}

var defaultSnippets = []Snippet{
	{
		Language:    "TypeScript",
		Description: "Default code",
		Lines: []string{
			"import React, { useState, useEffect } from 'react';",
			"import { useQuery, useMutation } from '@tanstack/react-query';",
			"",
			"interface UserData {",
			"  id: string;",
			"  name: string;",
			"  email: string;",
			"  createdAt: Date;",
			"}",
			"",
			"const UserDashboard: React.FC = () => {",
			"  const [filter, setFilter] = useState('active');",
			"  const [page, setPage] = useState(1);",
			"",
			"  const { data: users, isLoading } = useQuery({",
			"    queryKey: ['users', filter, page],",
			"    queryFn: fetchUsers,",
			"  });",
			"",
			"  const updateUser = useMutation({",
			"    mutationFn: updateUserData,",
			"    onSuccess: () => {",
			"      queryClient.invalidateQueries({ queryKey: ['users'] });",
			"    },",
			"  });",
			"",
			"  if (isLoading) return <Loader />;",
			"  return (",
			"    <div className='dashboard'>",
			"      <UserTable users={users} />",
			"    </div>",
			"  );",
			"};",
		},
	},
	{
		Language:    "Go",
		Description: "Worker pool",
		Lines: []string{
			"package worker",
			"",
			"const MAX_WORKERS = 8",
			"",
			"type Job struct {",
			"    ID   int64",
			"    Name string",
			"}",
			"",
			"func Run(jobs <-chan Job, results chan<- error) {",
			"    for i := 0; i < MAX_WORKERS; i++ {",
			"        go func() {",
			"            for job := range jobs {",
			"                results <- process(job) // never blocks the feeder",
			"            }",
			"        }()",
			"    }",
			"}",
		},
	},
	{
		Language:    "Python",
		Description: "Async fetch",
		Lines: []string{
			"import asyncio",
			"",
			"RETRIES = 3",
			"",
			"async def fetch_all(client, urls):",
			"    results = []",
			"    for url in urls:",
			"        for attempt in range(RETRIES):",
			"            try:",
			"                results.append(await client.get(url))",
			"                break",
			"            except TimeoutError:",
			"                await asyncio.sleep(0.5 * attempt)",
			"    return results",
		},
	},
}
